package repository

// CategoryListFilter filters the category list.
type CategoryListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// SubcategoryListFilter filters the subcategory list.
type SubcategoryListFilter struct {
	Page         int
	PageSize     int
	CategorySlug string
	Search       string
}

// ProductListFilter filters the product list.
type ProductListFilter struct {
	Page            int
	PageSize        int
	SubcategorySlug string
	Search          string
}
