package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"match-service/internal/config"
	"match-service/internal/fileio"
	"match-service/internal/match/model"
	matchsvc "match-service/internal/match/service"
)

// Columns returns the handler for POST /columns: a header preview so a
// client can populate its column pickers before running a match.
func Columns(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		defer r.Body.Close()
		rows, headers, ok := readUpload(w, r, cfg)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		resp := map[string]any{"columns": headers, "rows": len(rows)}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}
		log.Info().Int("columns", len(headers)).Int("rows", len(rows)).Msg("columns previewed")
	}
}

// Match returns the handler for POST /match. Form fields: file, main_column,
// target_column, algorithm, threshold, header_row, format (json|csv).
func Match(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		defer r.Body.Close()
		rows, headers, ok := readUpload(w, r, cfg)
		if !ok {
			return
		}

		mainKey := resolveKey(headers, r.FormValue("main_column"))
		targetKey := resolveKey(headers, r.FormValue("target_column"))
		if mainKey == "" || targetKey == "" {
			http.Error(w, "main_column and target_column must name existing columns", http.StatusBadRequest)
			return
		}

		alg := model.Ratio
		if v := r.FormValue("algorithm"); v != "" {
			var err error
			if alg, err = model.ParseAlgorithm(v); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		opts := model.Options{
			Algorithm: alg,
			Threshold: atoi(r.FormValue("threshold"), 80),
		}

		mainCol := columnValues(rows, mainKey)
		targetCol := columnValues(rows, targetKey)

		lastPct := 0
		progress := func(done, total int) {
			if pct := done * 100 / total; pct >= lastPct+10 || done == total {
				lastPct = pct
				log.Debug().Int("done", done).Int("total", total).Msg("match progress")
			}
		}

		res, err := matchsvc.Run(r.Context(), mainCol, targetCol, opts, progress)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				// client went away; the partial result has nowhere to go
				log.Warn().Int("rows", len(res.Rows)).Msg("match canceled")
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if r.FormValue("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="fuzzy_match_results.csv"`)
			if err := matchsvc.WriteCSV(w, res.Rows); err != nil {
				log.Error().Err(err).Msg("write csv")
				return
			}
		} else {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				log.Error().Err(err).Msg("write json")
				return
			}
		}

		log.Info().
			Int("queries", res.Summary.Total).
			Int("matches", res.Summary.Matches).
			Str("algorithm", opts.Algorithm.String()).
			Int("threshold", opts.Threshold).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}

// readUpload parses the multipart form and reads the "file" field into row
// maps. On failure it writes the 400 itself and returns ok=false.
func readUpload(w http.ResponseWriter, r *http.Request, cfg config.Config) ([]map[string]string, []string, bool) {
	if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	defer file.Close()

	rows, headers, err := fileio.ReadAnyMaps(file, header.Filename, atoi(r.FormValue("header_row"), 1))
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return rows, headers, true
}
