// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"slices"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks

type SalesRecordRepository interface {
	ListByYear(year int) []domain.SalesRecord
	AvailableYears() []int
	SkippedRecords() []domain.SkippedRecord
	Count() int
}

// salesRecordRepository mantém o dataset validado em memória, somente leitura
type salesRecordRepository struct {
	name    string
	byYear  map[int][]domain.SalesRecord
	years   []int
	skipped []domain.SkippedRecord
	count   int
}

func NewSalesRecordRepository(name string, raw []domain.RawSalesRecord, opts domain.ParseOptions) SalesRecordRepository {
	parsed := domain.ParseSalesRecords(raw, opts)

	repo := &salesRecordRepository{
		name:    name,
		byYear:  make(map[int][]domain.SalesRecord),
		skipped: parsed.Skipped,
		count:   len(parsed.Records),
	}

	for _, record := range parsed.Records {
		year := record.Date.Year()
		repo.byYear[year] = append(repo.byYear[year], record)
	}

	for year, records := range repo.byYear {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})
		repo.years = append(repo.years, year)
	}
	slices.Sort(repo.years)

	for _, skipped := range parsed.Skipped {
		logrus.WithFields(logrus.Fields{
			"dataset": name,
			"index":   skipped.Index,
			"date":    skipped.Date,
			"reason":  skipped.Reason,
		}).Warn("Registro descartado na carga do dataset")
	}

	logrus.WithFields(logrus.Fields{
		"dataset":         name,
		"records":         repo.count,
		"skipped_records": len(parsed.Skipped),
		"years":           repo.years,
	}).Info("Dataset carregado em memória")

	return repo
}

// ListByYear retorna uma cópia para que o chamador não altere o dataset
func (r *salesRecordRepository) ListByYear(year int) []domain.SalesRecord {
	return slices.Clone(r.byYear[year])
}

func (r *salesRecordRepository) AvailableYears() []int {
	return slices.Clone(r.years)
}

func (r *salesRecordRepository) SkippedRecords() []domain.SkippedRecord {
	return slices.Clone(r.skipped)
}

func (r *salesRecordRepository) Count() int {
	return r.count
}
