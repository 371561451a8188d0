package main

import (
	"context"
	"fmt"
	"strings"
)

// The bundled demo controller: a small product catalog exercising the
// full annotation vocabulary.

type Product struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
}

type StoreController struct {
	products map[int]Product
	nextID   int
}

func NewStoreController() *StoreController {
	return &StoreController{
		products: map[int]Product{
			1: {ID: 1, Name: "mug", Price: 7.5, Tags: []string{"kitchen"}},
			2: {ID: 2, Name: "poster", Price: 12, Tags: []string{"wall"}},
		},
		nextID: 3,
	}
}

func (s *StoreController) MethodDocs() map[string]string {
	return map[string]string{
		"GetProduct": `Returns a single product by its identifier.
@Query
@param id int`,
		"SearchProducts": `Searches products by name substring.
@Query
@param query string
@return Product[]`,
		"AddProduct": `Adds a product to the catalog.
@Mutation
@Logged
@param name string
@param price float`,
		"RemoveProduct": `Removes a product from the catalog.
@Mutation
@Right("admin")
@param id int`,
	}
}

func (s *StoreController) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("no product %d", id)
	}
	return &p, nil
}

func (s *StoreController) SearchProducts(ctx context.Context, query string) (any, error) {
	var out []Product
	for _, p := range s.products {
		if strings.Contains(p.Name, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *StoreController) AddProduct(ctx context.Context, name string, price float64) (Product, error) {
	p := Product{ID: s.nextID, Name: name, Price: price}
	s.products[p.ID] = p
	s.nextID++
	return p, nil
}

func (s *StoreController) RemoveProduct(ctx context.Context, id int) (bool, error) {
	_, ok := s.products[id]
	delete(s.products, id)
	return ok, nil
}

// Static auth stubs for the demo build: the caller is logged in and
// holds every right, so all four fields render.
type demoAuth struct{}

func (demoAuth) IsLoggedIn() bool            { return true }
func (demoAuth) IsAllowed(right string) bool { return true }
