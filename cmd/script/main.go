// Loads bond records from a csv file and persists them, for seeding a
// fresh database.
//
// usage: go run cmd/script/main.go -file bonds.csv
//
// csv columns: isin, maturity_date, coupon_dates (pipe-separated
// YYYY-MM-DD), coupon_rate, face_value, market_price (optional).
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"bondrisk/cmd"
	"bondrisk/internal"
	"bondrisk/internal/domain"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type bondCsvRow struct {
	Isin         string   `csv:"isin"`
	MaturityDate string   `csv:"maturity_date"`
	CouponDates  string   `csv:"coupon_dates"`
	CouponRate   float64  `csv:"coupon_rate"`
	FaceValue    float64  `csv:"face_value"`
	MarketPrice  *float64 `csv:"market_price"`
}

func main() {
	file := flag.String("file", "bonds.csv", "path to the bond csv file")
	flag.Parse()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rows := []bondCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Fatal(err)
	}

	bonds := make([]domain.Bond, 0, len(rows))
	for _, row := range rows {
		bond, err := row.toDomain()
		if err != nil {
			log.Fatalf("bad row for isin %s: %v", row.Isin, err)
		}
		bonds = append(bonds, bond)
	}

	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	saved, err := handler.RiskService.LoadBonds(context.Background(), bonds)
	if err != nil {
		log.Fatal(err)
	}

	internal.Pprint(saved)
}

func (r bondCsvRow) toDomain() (domain.Bond, error) {
	maturityDate, err := time.Parse("2006-01-02", r.MaturityDate)
	if err != nil {
		return domain.Bond{}, err
	}

	couponDates := []time.Time{}
	for _, s := range strings.Split(r.CouponDates, "|") {
		if s == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return domain.Bond{}, err
		}
		couponDates = append(couponDates, d)
	}

	bond := domain.Bond{
		ISIN:         r.Isin,
		MaturityDate: maturityDate,
		CouponDates:  couponDates,
		CouponRate:   decimal.NewFromFloat(r.CouponRate),
		FaceValue:    decimal.NewFromFloat(r.FaceValue),
	}
	if r.MarketPrice != nil {
		marketPrice := decimal.NewFromFloat(*r.MarketPrice)
		bond.MarketPrice = &marketPrice
	}

	return bond, nil
}
