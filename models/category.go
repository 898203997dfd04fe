package models

// Category adalah metadata statis untuk satu kategori layanan.
// Tabel ini fixed di kode, bukan state di database.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var categories = []Category{
	{Slug: "maid", Name: "Maid Services", Description: "Professional house cleaning and maintenance services"},
	{Slug: "cook", Name: "Cook Services", Description: "Expert cooking and meal preparation for your family"},
	{Slug: "babysitter", Name: "Babysitting", Description: "Trusted childcare services for your little ones"},
	{Slug: "cleaner", Name: "Deep Cleaning", Description: "Intensive and professional cleaning services for your home"},
	{Slug: "plumber", Name: "Plumbing", Description: "Expert plumbing and leak repair services"},
	{Slug: "electrician", Name: "Electrician", Description: "Certified professionals for electrical work and repairs"},
	{Slug: "gardener", Name: "Gardening", Description: "Professional gardening and landscaping services"},
	{Slug: "driver", Name: "Driver Services", Description: "Skilled drivers for daily commutes and travel"},
}

var categoryBySlug = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.Slug] = c
	}
	return m
}()

// AllCategories mengembalikan daftar kategori dalam urutan tetap.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryBySlug melakukan lookup kategori; ok=false jika slug tidak dikenal.
func CategoryBySlug(slug string) (Category, bool) {
	c, ok := categoryBySlug[slug]
	return c, ok
}

// IsValidCategory memeriksa slug kategori untuk validasi pendaftaran helper.
func IsValidCategory(slug string) bool {
	_, ok := categoryBySlug[slug]
	return ok
}
