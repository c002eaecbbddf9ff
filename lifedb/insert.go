package lifedb

import (
	"database/sql"
	"fmt"
)

// InsertObservationBatch adds observations to the database inside a single
// transaction, replacing any existing rows for the same country and year.
func InsertObservationBatch(db *sql.DB, observations []Observation) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO observations (
			country, year, status, life_expectancy, adult_mortality,
			infant_deaths, alcohol, percentage_expenditure, hepatitis_b,
			measles, bmi, under_five_deaths, polio, total_expenditure,
			diphtheria, hiv_aids, gdp, population, thinness_10_19,
			thinness_5_9, income_composition, schooling
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, o := range observations {
		_, err := stmt.Exec(
			o.Country, o.Year, o.Status, o.LifeExpectancy, o.AdultMortality,
			o.InfantDeaths, o.Alcohol, o.PercentageExpenditure, o.HepatitisB,
			o.Measles, o.BMI, o.UnderFiveDeaths, o.Polio, o.TotalExpenditure,
			o.Diphtheria, o.HIVAIDS, o.GDP, o.Population, o.Thinness1019,
			o.Thinness59, o.IncomeComposition, o.Schooling,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting observation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertClusterMemberBatch adds the members of a cluster run in one
// transaction.
func InsertClusterMemberBatch(db *sql.DB, members []ClusterMember) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cluster_members (run_id, cluster_id, country, year, representative)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, m := range members {
		if _, err := stmt.Exec(m.RunID, m.ClusterID, m.Country, m.Year, m.Representative); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting cluster member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertGraphEdgeBatch adds the similarity edges of a cluster run in one
// transaction.
func InsertGraphEdgeBatch(db *sql.DB, edges []GraphEdge) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO graph_edges (run_id, source, target, weight)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, e := range edges {
		if _, err := stmt.Exec(e.RunID, e.Source, e.Target, e.Weight); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting graph edge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
