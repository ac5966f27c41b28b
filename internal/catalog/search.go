package catalog

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id int) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// IndexOf returns the position of the book with the given ID, or -1.
func IndexOf(books []Book, id int) int {
	for i := range books {
		if books[i].ID == id {
			return i
		}
	}
	return -1
}
