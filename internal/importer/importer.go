// Package importer loads catalog CSV files into the development database.
package importer

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

// Kind is the type of rows a CSV file holds.
type Kind string

const (
	KindProducts   Kind = "products"
	KindCategories Kind = "categories"
)

type ProductWriter interface {
	UpsertBySlug(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type CategoryWriter interface {
	UpsertBySlug(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

// CSVImporter reads product or category CSV files and inserts/updates rows
// keyed by slug. Product rows name their category by slug or name; unknown
// categories are created on the fly.
type CSVImporter struct {
	reader       *csv.Reader
	productRepo  ProductWriter
	categoryRepo CategoryWriter
	categoryIDs  map[string]string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:       csvr,
		productRepo:  products,
		categoryRepo: categories,
		categoryIDs:  make(map[string]string),
	}
}

// DetectKind peeks at the header row. A price column marks a product file.
func DetectKind(r io.Reader) (Kind, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	headers, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil {
		return "", fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["price"]; ok {
		return KindProducts, nil
	}
	if _, ok := index["name"]; ok {
		return KindCategories, nil
	}
	return "", errors.New("unrecognized csv headers")
}

// Run parses every row and returns how many were saved.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	_, isProducts := index["price"]
	if isProducts && i.productRepo == nil {
		return 0, errors.New("product file given but no product writer")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++
		if blank(record) {
			continue
		}

		if isProducts {
			err = i.saveProduct(ctx, record, index)
		} else {
			err = i.saveCategory(ctx, record, index)
		}
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) saveProduct(ctx context.Context, record []string, index map[string]int) error {
	name := pick(record, index, "name")
	if name == "" {
		return errors.New("name required")
	}
	price, err := decimal.NewFromString(pick(record, index, "price"))
	if err != nil || price.IsNegative() {
		return fmt.Errorf("invalid price for %q", name)
	}
	stock := 0
	if s := pick(record, index, "stock"); s != "" {
		if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
			return fmt.Errorf("invalid stock for %q", name)
		}
	}
	slug := pick(record, index, "slug")
	if slug == "" {
		slug = domain.Slugify(name)
	}

	categoryID, err := i.categoryID(ctx, pick(record, index, "category"))
	if err != nil {
		return err
	}

	_, err = i.productRepo.UpsertBySlug(ctx, domain.ProductInput{
		Name:        name,
		Slug:        slug,
		Description: pick(record, index, "description"),
		Price:       price.Round(2),
		Image:       pick(record, index, "image"),
		Stock:       stock,
		CategoryID:  categoryID,
	})
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", slug, err)
	}
	return nil
}

func (i *CSVImporter) saveCategory(ctx context.Context, record []string, index map[string]int) error {
	name := pick(record, index, "name")
	if name == "" {
		return errors.New("name required")
	}
	slug := pick(record, index, "slug")
	if slug == "" {
		slug = domain.Slugify(name)
	}
	c, err := i.categoryRepo.UpsertBySlug(ctx, domain.CategoryInput{
		Name:        name,
		Slug:        slug,
		Image:       pick(record, index, "image"),
		Description: pick(record, index, "description"),
	})
	if err != nil {
		return fmt.Errorf("upsert category %q: %w", slug, err)
	}
	i.categoryIDs[slug] = c.ID
	return nil
}

// categoryID resolves a category column value, creating the category once.
func (i *CSVImporter) categoryID(ctx context.Context, ref string) (string, error) {
	if ref == "" || i.categoryRepo == nil {
		return "", nil
	}
	slug := domain.Slugify(ref)
	if id, ok := i.categoryIDs[slug]; ok {
		return id, nil
	}
	name := ref
	if name == slug {
		name = titleCase(strings.ReplaceAll(slug, "-", " "))
	}
	c, err := i.categoryRepo.UpsertBySlug(ctx, domain.CategoryInput{Name: name, Slug: slug})
	if err != nil {
		return "", fmt.Errorf("upsert category %q: %w", slug, err)
	}
	i.categoryIDs[slug] = c.ID
	return c.ID, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
