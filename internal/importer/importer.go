package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"departmental-store/internal/domain"
	productrepo "departmental-store/internal/repository/product"
)

type ProductWriter interface {
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
}

type DepartmentReader interface {
	GetByName(ctx context.Context, name string) (*domain.Department, error)
}

// CSVImporter reads product rows from CSV and inserts them, resolving
// department names to ids. Expected headers: name, department, category,
// brand, stock, expiry (optional, YYYY-MM-DD).
type CSVImporter struct {
	reader      *csv.Reader
	products    ProductWriter
	departments DepartmentReader
}

func NewCSVImporter(r io.Reader, products ProductWriter, departments DepartmentReader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		products:    products,
		departments: departments,
	}
}

// Run parses CSV rows and inserts one product per row. Department ids are
// cached across rows.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	deptIDs := make(map[string]int64)
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := pick(record, index, "name")
		deptName := pick(record, index, "department")
		if name == "" || deptName == "" {
			return imported, fmt.Errorf("row %d: name and department are required", imported+2)
		}

		deptID, ok := deptIDs[deptName]
		if !ok {
			dept, err := i.departments.GetByName(ctx, deptName)
			if err != nil {
				return imported, fmt.Errorf("resolve department %q: %w", deptName, err)
			}
			deptID = dept.ID
			deptIDs[deptName] = deptID
		}

		in := productrepo.CreateProductInput{
			Name:         name,
			DepartmentID: deptID,
			Category:     pick(record, index, "category"),
			Brand:        pick(record, index, "brand"),
		}
		if v := pick(record, index, "stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				return imported, fmt.Errorf("invalid stock %q for product %q", v, name)
			}
			in.Stock = stock
		}
		if v := pick(record, index, "expiry"); v != "" {
			expiry, err := time.Parse("2006-01-02", v)
			if err != nil {
				return imported, fmt.Errorf("invalid expiry %q for product %q", v, name)
			}
			in.ExpiryDate = &expiry
		}

		if _, err := i.products.Create(ctx, in); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", name, err)
		}
		imported++
	}

	return imported, nil
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
