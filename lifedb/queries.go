package lifedb

import (
	"context"
	"database/sql"
	"time"
)

// Queries wraps the database handle with typed query methods.
type Queries struct {
	db *sql.DB
}

// New creates a Queries value for the given database handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const observationColumns = `country, year, status, life_expectancy, adult_mortality,
	infant_deaths, alcohol, percentage_expenditure, hepatitis_b, measles, bmi,
	under_five_deaths, polio, total_expenditure, diphtheria, hiv_aids, gdp,
	population, thinness_10_19, thinness_5_9, income_composition, schooling`

func scanObservation(rows *sql.Rows) (Observation, error) {
	var o Observation
	err := rows.Scan(
		&o.Country, &o.Year, &o.Status, &o.LifeExpectancy, &o.AdultMortality,
		&o.InfantDeaths, &o.Alcohol, &o.PercentageExpenditure, &o.HepatitisB,
		&o.Measles, &o.BMI, &o.UnderFiveDeaths, &o.Polio, &o.TotalExpenditure,
		&o.Diphtheria, &o.HIVAIDS, &o.GDP, &o.Population, &o.Thinness1019,
		&o.Thinness59, &o.IncomeComposition, &o.Schooling,
	)
	return o, err
}

// ListObservations retrieves every observation, ordered by country then year.
func (q *Queries) ListObservations(ctx context.Context) ([]Observation, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+observationColumns+` FROM observations ORDER BY country, year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var observations []Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}

	return observations, rows.Err()
}

// GetObservationsForCountry retrieves the observations for one country,
// ordered by year.
func (q *Queries) GetObservationsForCountry(ctx context.Context, country string) ([]Observation, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+observationColumns+` FROM observations WHERE country = ? ORDER BY year`, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var observations []Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}

	return observations, rows.Err()
}

// ListCountries retrieves every distinct country with its development status.
func (q *Queries) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT DISTINCT country, status FROM observations ORDER BY country`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Name, &c.Status); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}

	return countries, rows.Err()
}

// CountObservations returns the number of stored observations.
func (q *Queries) CountObservations(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&count)
	return count, err
}

// InsertClusterRun records a clustering pass and returns its ID.
func (q *Queries) InsertClusterRun(ctx context.Context, threshold float64, features string) (int64, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO cluster_runs (threshold, features, created_at) VALUES (?, ?, ?)`,
		threshold, features, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetClusterRun retrieves a single cluster run by ID.
func (q *Queries) GetClusterRun(ctx context.Context, id int64) (ClusterRun, error) {
	var run ClusterRun
	err := q.db.QueryRowContext(ctx,
		`SELECT id, threshold, features, created_at FROM cluster_runs WHERE id = ?`, id).
		Scan(&run.ID, &run.Threshold, &run.Features, &run.CreatedAt)
	return run, err
}

// LatestClusterRun retrieves the most recent cluster run.
func (q *Queries) LatestClusterRun(ctx context.Context) (ClusterRun, error) {
	var run ClusterRun
	err := q.db.QueryRowContext(ctx,
		`SELECT id, threshold, features, created_at FROM cluster_runs ORDER BY id DESC LIMIT 1`).
		Scan(&run.ID, &run.Threshold, &run.Features, &run.CreatedAt)
	return run, err
}

// ListClusterMembers retrieves the members of every cluster in a run, ordered
// by cluster then country and year.
func (q *Queries) ListClusterMembers(ctx context.Context, runID int64) ([]ClusterMember, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT run_id, cluster_id, country, year, representative
		 FROM cluster_members WHERE run_id = ? ORDER BY cluster_id, country, year`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var members []ClusterMember
	for rows.Next() {
		var m ClusterMember
		if err := rows.Scan(&m.RunID, &m.ClusterID, &m.Country, &m.Year, &m.Representative); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// ListGraphEdges retrieves the similarity edges persisted for a run.
func (q *Queries) ListGraphEdges(ctx context.Context, runID int64) ([]GraphEdge, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT run_id, source, target, weight FROM graph_edges WHERE run_id = ? ORDER BY weight DESC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var edges []GraphEdge
	for rows.Next() {
		var e GraphEdge
		if err := rows.Scan(&e.RunID, &e.Source, &e.Target, &e.Weight); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, rows.Err()
}
