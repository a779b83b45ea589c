package domain

// Book is a catalog entry. The catalog is read-only for this service;
// books are queried during validation and detail assembly, never mutated.
type Book struct {
	ID          int64  `json:"bookId"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Rating      int    `json:"rating"`
	IsPublic    bool   `json:"isPublic"`
	IsFeatured  bool   `json:"isFeatured"`
	CategoryID  int64  `json:"categoryId"`
}

type Category struct {
	ID   int64  `json:"categoryId"`
	Name string `json:"name"`
}
