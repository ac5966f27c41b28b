package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blackwell-systems/bookctl/internal/catalog"
)

const collection = "books"

// List fetches every book in the collection, in service order.
func (c *Client) List(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := c.doJSON(ctx, http.MethodGet, c.url(collection), nil, &books); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []catalog.Book{}
	}
	return books, nil
}

// Get fetches a single book. A missing book yields a 404 *ServiceError.
func (c *Client) Get(ctx context.Context, id int) (catalog.Book, error) {
	var b catalog.Book
	if err := c.doJSON(ctx, http.MethodGet, c.url(collection, itoa(id)), nil, &b); err != nil {
		return catalog.Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

// Create adds a book and returns it with its assigned ID.
func (c *Client) Create(ctx context.Context, p catalog.Payload) (catalog.Book, error) {
	var b catalog.Book
	if err := c.doJSON(ctx, http.MethodPost, c.url(collection), p, &b); err != nil {
		return catalog.Book{}, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

// Update replaces every editable field of the book with the payload.
func (c *Client) Update(ctx context.Context, id int, p catalog.Payload) (catalog.Book, error) {
	var b catalog.Book
	if err := c.doJSON(ctx, http.MethodPut, c.url(collection, itoa(id)), p, &b); err != nil {
		return catalog.Book{}, fmt.Errorf("update book %d: %w", id, err)
	}
	return b, nil
}

// Delete removes a book permanently.
func (c *Client) Delete(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, c.url(collection, itoa(id)), nil, nil); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}
