// Copyright 2025 The GwangjuARDonMap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/mindy15963/GwangjuARDonMap/common"
)

// column names as used by the source GT_ARCHITECTURE_TOURISM_RESOURCES table
const (
	colPlaceName   = "PLACE_NM"
	colAddress     = "ADDR"
	colDescription = "DC_CN"
	colPurpose     = "BULD_PURPS_NM"
	colEra         = "ERA_NM"
	colDistrict    = "district"
	colLatitude    = "latitude"
	colLongitude   = "longitude"
)

var (
	utf8BOM = []byte{0xef, 0xbb, 0xbf}

	// ErrUnusableGeoCache means a geo-cache file exists but cannot
	// replace fresh geocoding (missing coordinate columns or no
	// resolved coordinates at all).
	ErrUnusableGeoCache = errors.New("geo cache not usable")
)

// LoadStats summarizes a single CSV import. Per-row problems never
// abort a load - they just end up counted here.
type LoadStats struct {
	TotalRows        int  `json:"totalRows"`
	Imported         int  `json:"imported"`
	SkippedNoAddress int  `json:"skippedNoAddress"`
	SkippedMalformed int  `json:"skippedMalformed"`
	FromCache        bool `json:"fromCache"`
}

// decodeToUTF8 normalizes raw CSV bytes to UTF-8. Municipal open-data
// exports come either as UTF-8 (sometimes with BOM) or as EUC-KR.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	ans, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CSV as EUC-KR: %w", err)
	}
	return ans, nil
}

type columnMap map[string]int

func (cm columnMap) get(row []string, name string) string {
	idx, ok := cm[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (cm columnMap) getFloat(row []string, name string) common.Maybe[float64] {
	v := cm.get(row, name)
	if v == "" {
		return common.NewEmptyMaybe[float64]()
	}
	ans, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return common.NewEmptyMaybe[float64]()
	}
	return common.NewMaybe(ans)
}

func readTable(path string) (columnMap, [][]string, *LoadStats, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	rawData, err = decodeToUTF8(rawData)
	if err != nil {
		return nil, nil, nil, err
	}
	reader := csv.NewReader(bytes.NewReader(rawData))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read dataset header %s: %w", path, err)
	}
	columns := make(columnMap, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	stats := &LoadStats{}
	rows := make([][]string, 0, 500)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.SkippedMalformed++
			continue
		}
		stats.TotalRows++
		rows = append(rows, row)
	}
	return columns, rows, stats, nil
}

func rowToRecord(columns columnMap, row []string) Record {
	addr := columns.get(row, colAddress)
	return Record{
		PlaceName:   columns.get(row, colPlaceName),
		Address:     addr,
		Description: columns.get(row, colDescription),
		Purpose:     columns.get(row, colPurpose),
		Era:         columns.get(row, colEra),
		District:    ExtractDistrict(addr),
		Lat:         columns.getFloat(row, colLatitude),
		Lon:         columns.getFloat(row, colLongitude),
	}
}

// LoadRecords imports the source CSV. Rows without an address cannot
// be located on the map nor assigned a district and are dropped, which
// matches how the upstream table is curated. The only hard failures
// are structural ones (unreadable file, no address column, zero
// importable rows).
func LoadRecords(path string) ([]Record, LoadStats, error) {
	columns, rows, stats, err := readTable(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	if !common.MapContains(columns, colAddress) {
		return nil, *stats, fmt.Errorf("dataset %s is missing the %s column", path, colAddress)
	}
	ans := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := rowToRecord(columns, row)
		if rec.Address == "" {
			stats.SkippedNoAddress++
			continue
		}
		ans = append(ans, rec)
	}
	stats.Imported = len(ans)
	if len(ans) == 0 {
		return nil, *stats, fmt.Errorf("dataset %s contains no importable records", path)
	}
	log.Info().
		Str("path", path).
		Int("imported", stats.Imported).
		Int("skippedNoAddress", stats.SkippedNoAddress).
		Int("skippedMalformed", stats.SkippedMalformed).
		Msg("loaded dataset")
	return ans, *stats, nil
}

// LoadGeoCache imports a previously geocoded copy of the dataset.
// The cache is accepted only if it carries coordinate columns with at
// least one resolved pair; otherwise ErrUnusableGeoCache is returned
// and the caller is expected to geocode from scratch.
func LoadGeoCache(path string) ([]Record, LoadStats, error) {
	columns, rows, stats, err := readTable(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	if !common.MapContains(columns, colLatitude) || !common.MapContains(columns, colLongitude) {
		return nil, *stats, ErrUnusableGeoCache
	}
	ans := make([]Record, 0, len(rows))
	var numResolved int
	for _, row := range rows {
		rec := rowToRecord(columns, row)
		if rec.Address == "" {
			stats.SkippedNoAddress++
			continue
		}
		if rec.HasCoordinates() {
			numResolved++
		}
		ans = append(ans, rec)
	}
	if numResolved == 0 {
		return nil, *stats, ErrUnusableGeoCache
	}
	stats.Imported = len(ans)
	stats.FromCache = true
	log.Info().
		Str("path", path).
		Int("imported", stats.Imported).
		Int("resolved", numResolved).
		Msg("reusing geo cache")
	return ans, *stats, nil
}

// SaveGeoCache exports records with their resolved coordinates. The
// file is written with a UTF-8 BOM so spreadsheet applications detect
// the encoding (the original pipeline used utf-8-sig for the same
// reason).
func SaveGeoCache(path string, records []Record) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writer := csv.NewWriter(&buf)
	header := []string{
		colPlaceName, colAddress, colDescription, colPurpose, colEra,
		colDistrict, colLatitude, colLongitude,
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write geo cache %s: %w", path, err)
	}
	for _, rec := range records {
		var latStr, lonStr string
		rec.Lat.Apply(func(v float64) { latStr = strconv.FormatFloat(v, 'f', -1, 64) })
		rec.Lon.Apply(func(v float64) { lonStr = strconv.FormatFloat(v, 'f', -1, 64) })
		row := []string{
			rec.PlaceName, rec.Address, rec.Description, rec.Purpose, rec.Era,
			rec.District, latStr, lonStr,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write geo cache %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write geo cache %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write geo cache %s: %w", path, err)
	}
	return nil
}
