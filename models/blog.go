package models

import "time"

// Blog post categories offered by the editor.
const (
	CategoryFinance    = "Finance"
	CategoryInvesting  = "Investing"
	CategoryRetirement = "Retirement"
	CategoryTax        = "Tax"
	CategoryInsurance  = "Insurance"
	CategoryGeneral    = "General"
)

// Categories lists the accepted blog categories.
var Categories = []string{
	CategoryFinance,
	CategoryInvesting,
	CategoryRetirement,
	CategoryTax,
	CategoryInsurance,
	CategoryGeneral,
}

// IsValidCategory reports whether c is one of the accepted categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// BlogPost is an article. Only published posts are visible to the public.
type BlogPost struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	SubTitle    string    `bson:"subTitle" json:"subTitle"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DashboardData aggregates the counts shown on the admin dashboard.
type DashboardData struct {
	Blogs       int64      `json:"blogs"`
	Comments    int64      `json:"comments"`
	Drafts      int64      `json:"drafts"`
	RecentBlogs []BlogPost `json:"recentBlogs"`
}
