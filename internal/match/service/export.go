package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"match-service/internal/match/model"
)

var csvHeader = []string{"Main Item", "Best Match", "Confidence (%)", "Match Status"}

// WriteCSV renders the result table in the layout the download endpoint
// serves, one row per query item.
func WriteCSV(w io.Writer, rows []model.MatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Query, r.BestMatch, strconv.Itoa(r.Score), r.Status}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
