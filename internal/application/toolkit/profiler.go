package toolkit

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// profileNotes é a nota fixa anexada a todo perfil de custos.
const profileNotes = "Use this structured profile to explain top spend drivers, identify hotspots, " +
	"and propose concrete optimization levers. Always clearly state assumptions."

// topGroupLimit limits the service/project breakdowns to the biggest spenders.
const topGroupLimit = 20

// columnMatcher seleciona a primeira coluna (na ordem original do CSV)
// cujo nome normalizado contém um dos substrings.
type columnMatcher struct {
	substrings []string
}

var (
	costMatcher    = columnMatcher{substrings: []string{"cost"}}
	serviceMatcher = columnMatcher{substrings: []string{"service", "product"}}
	projectMatcher = columnMatcher{substrings: []string{"project", "account"}}
)

// match returns the index of the first matching column, or -1.
func (m columnMatcher) match(columns []string) int {
	for i, col := range columns {
		for _, sub := range m.substrings {
			if strings.Contains(col, sub) {
				return i
			}
		}
	}
	return -1
}

// normalizeColumn normaliza um nome de coluna: trim, minúsculas,
// espaços viram underscores. A detecção de colunas depende dessa
// normalização ser aplicada a todos os nomes antes de qualquer lookup.
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// coerceCost converte uma célula de custo em decimal. Células vazias ou
// não numéricas contam como zero; nunca é um erro.
func coerceCost(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ProfileCosts parses and profiles a cloud billing CSV.
//
// csvText is the full CSV contents including the header row; the
// header must contain at least one column whose normalized name
// contains "cost". provider and currency are caller-supplied labels
// echoed back in the result.
//
// Fails with types.ErrEmptyInput, types.ErrEmptyDataset or
// types.ErrNoCostColumn; individual cost cells that do not parse as
// numbers are treated as 0.0 by design.
func ProfileCosts(csvText, provider, currency string) (*entity.CostProfile, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, types.ErrEmptyInput
	}

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV input: %w", err)
	}
	if len(records) == 0 {
		return nil, types.ErrEmptyDataset
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = normalizeColumn(name)
	}
	rows := records[1:]
	if len(rows) == 0 {
		return nil, types.ErrEmptyDataset
	}

	costIdx := costMatcher.match(columns)
	if costIdx < 0 {
		return nil, types.ErrNoCostColumn
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return row[idx]
		}
		return ""
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(coerceCost(cell(row, costIdx)))
	}

	groupBy := func(idx int) entity.CostBreakdown {
		if idx < 0 {
			return entity.CostBreakdown{}
		}
		sums := map[string]decimal.Decimal{}
		for _, row := range rows {
			key := cell(row, idx)
			sums[key] = sums[key].Add(coerceCost(cell(row, costIdx)))
		}

		breakdown := make(entity.CostBreakdown, 0, len(sums))
		for name, sum := range sums {
			breakdown = append(breakdown, entity.GroupCost{Name: name, Cost: round2(sum)})
		}
		// Ordena por custo decrescente; empates por nome para manter
		// o resultado determinístico entre execuções.
		sort.Slice(breakdown, func(i, j int) bool {
			if breakdown[i].Cost != breakdown[j].Cost {
				return breakdown[i].Cost > breakdown[j].Cost
			}
			return breakdown[i].Name < breakdown[j].Name
		})
		if len(breakdown) > topGroupLimit {
			breakdown = breakdown[:topGroupLimit]
		}
		return breakdown
	}

	return &entity.CostProfile{
		Currency:        currency,
		CloudProvider:   provider,
		RowCount:        len(rows),
		TotalCost:       round2(total),
		CostColumn:      columns[costIdx],
		CostByService:   groupBy(serviceMatcher.match(columns)),
		CostByProject:   groupBy(projectMatcher.match(columns)),
		DetectedColumns: columns,
		Notes:           profileNotes,
	}, nil
}
