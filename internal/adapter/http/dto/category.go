package dto

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Color string `json:"color" binding:"required,hexcolor"`
}
