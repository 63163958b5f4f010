package garment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"garment-geek/core/catalog"
	"garment-geek/core/utils"
)

// ErrorMode controls how ParseInventory reacts to a bad record.
type ErrorMode int

const (
	// Strict aborts the load on the first bad record.
	Strict ErrorMode = iota
	// SkipInvalid drops bad records and reports them in LoadResult.Skipped.
	SkipInvalid
)

// recordFields is the number of comma separated fields before the size list.
const recordFields = 10

// LoadResult is the outcome of loading an inventory.
type LoadResult struct {
	Inventory *catalog.Inventory
	// Skipped lists records dropped under SkipInvalid.
	Skipped []*ParseError
	// Version identifies the loaded data (file modification time, object ETag...).
	Version string
}

// ParseInventory reads inventory records from r.
//
// The first line is a header and is ignored, as are blank lines. Each record reads
//
//	type,name,code,price,brand,material,neckline,sleeve,pocket,style,[S,M,L],[description]
func ParseInventory(r io.Reader, mode ErrorMode) (*LoadResult, error) {
	result := &LoadResult{Inventory: catalog.NewInventory()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 || strings.TrimSpace(text) == "" {
			continue
		}

		item, err := ParseRecord(text)
		if err == nil {
			err = result.Inventory.Add(item)
			if errors.Is(err, catalog.ErrDuplicateProductCode) {
				err = &ParseError{Field: "code", Raw: item.Code.String(), Err: catalog.ErrDuplicateProductCode}
			}
		}
		if err == nil {
			continue
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			return nil, err
		}
		perr.Line = line
		if mode == Strict {
			return nil, perr
		}
		result.Skipped = append(result.Skipped, perr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return result, nil
}

// ParseRecord parses a single inventory line. Errors are *ParseError without a line number.
func ParseRecord(text string) (catalog.Item, error) {
	parts := strings.SplitN(text, "[", 3)
	if len(parts) != 3 {
		return catalog.Item{}, &ParseError{Field: "record", Raw: text, Err: ErrMalformedRecord}
	}

	fields := strings.Split(parts[0], ",")
	if len(fields) < recordFields {
		return catalog.Item{}, &ParseError{Field: "record", Raw: text, Err: ErrMalformedRecord}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	code, err := catalog.ParseProductCode(fields[2])
	if err != nil {
		return catalog.Item{}, &ParseError{Field: "code", Raw: fields[2], Err: err}
	}
	price, err := utils.ToFloat(fields[3])
	if err != nil {
		return catalog.Item{}, &ParseError{Field: "price", Raw: fields[3], Err: err}
	}

	sizes := strings.TrimSpace(parts[1])
	sizes = strings.TrimSuffix(strings.TrimSuffix(sizes, ","), "]")

	description := strings.TrimSpace(parts[2])
	description = strings.TrimSuffix(description, "]")

	return Record{
		Type:        fields[0],
		Name:        fields[1],
		Code:        code,
		Price:       price,
		Brand:       fields[4],
		Material:    fields[5],
		Neckline:    fields[6],
		SleeveType:  fields[7],
		PocketType:  fields[8],
		HoodieStyle: fields[9],
		Sizes:       utils.SplitList(sizes, ","),
		Description: description,
	}.Item()
}
