// Package console is the interactive storefront facade. It drives the same
// inventory service the HTTP handlers use, so everything the operator does is
// immediately visible through the API and vice versa.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/service"
)

type InventoryService interface {
	AddProduct(ctx context.Context, name string, price float64, stock int) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uint, price float64, stock int) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	Sell(ctx context.Context, productID uint, quantity int) (domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type Console struct {
	svc     InventoryService
	scanner *bufio.Scanner
	out     io.Writer
}

func New(svc InventoryService, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the operator menu until quit or EOF. Input errors are
// reported and re-prompted; they never leave partial state behind.
func (c *Console) Run() error {
	ctx := context.Background()

	for {
		c.printf("\n=== Retail POS ===\n")
		c.printf("1) List products\n")
		c.printf("2) Sell\n")
		c.printf("3) Add product\n")
		c.printf("4) Update product\n")
		c.printf("5) Delete product\n")
		c.printf("6) Sales history\n")
		c.printf("0) Quit\n")

		choice, ok := c.prompt("Choice: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.listProducts(ctx)
		case "2":
			c.sell(ctx)
		case "3":
			c.addProduct(ctx)
		case "4":
			c.updateProduct(ctx)
		case "5":
			c.deleteProduct(ctx)
		case "6":
			c.listSales(ctx)
		case "0", "q", "quit":
			return nil
		default:
			c.printf("Unknown choice.\n")
		}
	}
}

func (c *Console) listProducts(ctx context.Context) {
	products, err := c.svc.ListProducts(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	for _, p := range products {
		c.printf("%d - %s - $%.2f - Stock: %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
}

func (c *Console) sell(ctx context.Context) {
	id, ok := c.promptUint("Product ID: ")
	if !ok {
		return
	}
	quantity, ok := c.promptInt("Quantity to sell: ")
	if !ok {
		return
	}

	sale, err := c.svc.Sell(ctx, id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.printf("Product not found.\n")
		case errors.Is(err, service.ErrInsufficientStock):
			c.printf("Not enough stock.\n")
		case errors.Is(err, service.ErrInvalidQuantity):
			c.printf("Enter a valid quantity.\n")
		default:
			c.printf("Error: %v\n", err)
		}
		return
	}

	c.printf("Sale processed. Total: $%.2f\n", sale.TotalPrice)
}

func (c *Console) addProduct(ctx context.Context) {
	name, ok := c.prompt("Product name: ")
	if !ok {
		return
	}
	price, ok := c.promptFloat("Price: ")
	if !ok {
		return
	}
	stock, ok := c.promptInt("Stock: ")
	if !ok {
		return
	}

	product, err := c.svc.AddProduct(ctx, name, price, stock)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	c.printf("Product added with ID %d.\n", product.ID)
}

func (c *Console) updateProduct(ctx context.Context) {
	id, ok := c.promptUint("Product ID: ")
	if !ok {
		return
	}
	price, ok := c.promptFloat("New price: ")
	if !ok {
		return
	}
	stock, ok := c.promptInt("New stock: ")
	if !ok {
		return
	}

	if _, err := c.svc.UpdateProduct(ctx, id, price, stock); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.printf("Product not found.\n")
			return
		}

		c.printf("Error: %v\n", err)
		return
	}

	c.printf("Product updated.\n")
}

func (c *Console) deleteProduct(ctx context.Context) {
	id, ok := c.promptUint("Product ID: ")
	if !ok {
		return
	}

	confirm, ok := c.prompt("Delete this product? (y/n): ")
	if !ok || strings.TrimSpace(confirm) != "y" {
		c.printf("Cancelled.\n")
		return
	}

	if err := c.svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.printf("Product not found.\n")
			return
		}

		c.printf("Error: %v\n", err)
		return
	}

	c.printf("Product deleted.\n")
}

func (c *Console) listSales(ctx context.Context) {
	sales, err := c.svc.ListSales(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	if len(sales) == 0 {
		c.printf("No sales yet.\n")
		return
	}

	for _, s := range sales {
		c.printf("Sale ID: %d, Product ID: %d, Qty: %d, Total: $%.2f\n",
			s.ID, s.ProductID, s.Quantity, s.TotalPrice)
	}
}

func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.scanner.Scan() {
		return "", false
	}

	return c.scanner.Text(), true
}

func (c *Console) promptInt(label string) (int, bool) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		c.printf("Enter a valid number.\n")
		return 0, false
	}

	return value, true
}

func (c *Console) promptUint(label string) (uint, bool) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		c.printf("Enter a valid ID.\n")
		return 0, false
	}

	return uint(value), true
}

func (c *Console) promptFloat(label string) (float64, bool) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		c.printf("Enter a valid price.\n")
		return 0, false
	}

	return value, true
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
