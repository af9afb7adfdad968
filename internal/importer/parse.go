// Package importer reads cash events from CSV files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/envelope-zero/cashflow/internal/models"
	"github.com/shopspring/decimal"
)

// Columns of the cash events CSV file. All columns except is_taxable
// are required; when the is_taxable column is missing, every event
// defaults to not taxable.
const (
	columnName      = "name"
	columnAmount    = "usd"
	columnFrequency = "frequency"
	columnType      = "type_"
	columnTaxable   = "is_taxable"
)

// Parse parses a cash events CSV file. Any row that fails to parse
// fails the whole file, there are no partial results.
func Parse(f io.Reader) ([]models.CashEvent, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	events := []models.CashEvent{}

	// The first line is the header, it defines the column order
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("the CSV file does not have a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range []string{columnName, columnAmount, columnFrequency, columnType} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("the CSV header does not have a %q column", required)
		}
	}
	taxableColumn, hasTaxableColumn := columns[columnTaxable]

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		amount, err := decimal.NewFromString(record[columns[columnAmount]])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("amount could not be parsed to a decimal: %q", record[columns[columnAmount]]))
		}

		frequency, err := models.ParseFrequency(record[columns[columnFrequency]])
		if err != nil {
			return csvReadError(reader, err)
		}

		eventType, err := models.ParseEventType(record[columns[columnType]])
		if err != nil {
			return csvReadError(reader, err)
		}

		taxable := false
		if hasTaxableColumn {
			taxable, err = strconv.ParseBool(record[taxableColumn])
			if err != nil {
				return csvReadError(reader, fmt.Errorf("is_taxable could not be parsed to a boolean: %q", record[taxableColumn]))
			}
		}

		events = append(events, models.CashEvent{
			Name:      record[columns[columnName]],
			Amount:    amount,
			Frequency: frequency,
			Type:      eventType,
			Taxable:   taxable,
		})
	}

	return events, nil
}

// csvReadError returns an error with the line of the input the error
// occurred in included in the message.
func csvReadError(r *csv.Reader, err error) ([]models.CashEvent, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
