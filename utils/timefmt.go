package utils

import "fmt"

// To24Hour mengubah jam 12-hour + meridiem ke string "HH:MM".
// Jam 12 AM jadi 00, jam 12 PM tetap 12, jam PM lain ditambah 12.
func To24Hour(hour, minute int, meridiem string) string {
	h := hour
	if meridiem == "PM" && h != 12 {
		h += 12
	} else if meridiem == "AM" && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%02d", h, minute)
}

// FormatDisplayTime merender input 12-hour asli dengan zero-padding,
// mis. (5, 5, "PM") -> "05:05 PM".
func FormatDisplayTime(hour, minute int, meridiem string) string {
	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem)
}
