package keywords

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

/*

CREATE TABLE district_keyword (
	id INT NOT NULL auto_increment,
	analysis_id VARCHAR(40) NOT NULL,
	district VARCHAR(20) NOT NULL,
	value VARCHAR(200) NOT NULL,
	score FLOAT NOT NULL,
	count_in_district INT NOT NULL,
	count_in_others INT NOT NULL,
	created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id)
);

*/

// StoreKeywords archives the payload of one analysis run so the
// latest keywords survive a service restart. The archive is an
// optional convenience - a missing database configuration just
// disables it.
func StoreKeywords(ctx context.Context, db *sql.DB, analysisID string, ranked map[string][]RankedKeyword) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to store keywords: %w", err)
	}
	for district, entries := range ranked {
		for _, entry := range entries {
			_, err = tx.ExecContext(
				ctx,
				"INSERT INTO district_keyword "+
					"(analysis_id, district, value, score, count_in_district, count_in_others) "+
					"VALUES (?, ?, ?, ?, ?, ?)",
				analysisID,
				district,
				entry.Value,
				entry.Score,
				entry.CountInDistrict,
				entry.CountInOthers,
			)
			if err != nil {
				if err := tx.Rollback(); err != nil {
					log.Error().Err(err).Msg("StoreKeywords - failed to rollback a transaction")
				}
				return fmt.Errorf("failed to store keywords: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to store keywords: %w", err)
	}
	return nil
}

// LoadLatestKeywords restores the payload of the most recent archived
// analysis. An empty payload (no archived analysis yet) is not an
// error.
func LoadLatestKeywords(ctx context.Context, db *sql.DB) (Payload, error) {
	rows, err := db.QueryContext(
		ctx,
		"SELECT district, value, score, count_in_district "+
			"FROM district_keyword "+
			"WHERE analysis_id = ( "+
			"  SELECT analysis_id "+
			"  FROM district_keyword "+
			"  ORDER BY created DESC, id DESC "+
			"  LIMIT 1 "+
			") "+
			"ORDER BY district, score DESC",
	)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to load keywords: %w", err)
	}
	defer rows.Close()
	ans := Payload{}
	for rows.Next() {
		var district string
		var entry KeywordEntry
		if err := rows.Scan(&district, &entry.Token, &entry.Score, &entry.Count); err != nil {
			return Payload{}, fmt.Errorf("failed to load keywords: %w", err)
		}
		ans[district] = append(ans[district], entry)
	}
	return ans, nil
}
