package heredity

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeIndex wraps a pedigree index (.pdi) file: a SQLite database
// holding one row per person plus optional metadata about the table it
// was built from.
type PedigreeIndex struct {
	DB       *sqlx.DB
	Metadata *PDIMetadata
}

func (idx *PedigreeIndex) Close() error {
	return idx.DB.Close()
}

// PersonRow conforms to the data found in the rows of the SQLite table
// "Person" from pedigree index (.pdi) files, and can be easily parsed
// with sqlx. Mother, Father, and Trait are NULL when unknown.
type PersonRow struct {
	Name   string         `db:"name"`
	Mother sql.NullString `db:"mother"`
	Father sql.NullString `db:"father"`
	Trait  sql.NullBool   `db:"trait"`
}

// PDIMetadata conforms to the data found in the rows of the SQLite
// table "Metadata" from pedigree index files. Not all index files carry
// it.
type PDIMetadata struct {
	SourceName        string `db:"source_name"`
	NPeople           int    `db:"n_people"`
	IndexCreationTime Time   `db:"index_creation_time"`
}

// Pedigree reads every person out of the index and returns a validated
// Pedigree.
func (idx *PedigreeIndex) Pedigree() (Pedigree, error) {
	rows, err := idx.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	ped := make(Pedigree)
	var row PersonRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		if _, dup := ped[row.Name]; dup {
			return nil, pfx.Err(fmt.Errorf("index lists %q more than once", row.Name))
		}

		person := Person{
			Name:   row.Name,
			Mother: row.Mother.String,
			Father: row.Father.String,
		}
		if row.Trait.Valid {
			trait := row.Trait.Bool
			person.Trait = &trait
		}
		ped[row.Name] = person
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if err := ped.Validate(); err != nil {
		return nil, err
	}

	return ped, nil
}

const pdiSchema = `
CREATE TABLE IF NOT EXISTS Person (
	name TEXT PRIMARY KEY,
	mother TEXT,
	father TEXT,
	trait INTEGER
);
CREATE TABLE IF NOT EXISTS Metadata (
	source_name TEXT,
	n_people INTEGER,
	index_creation_time INTEGER
);`

// WritePDI creates (or overwrites the contents of) a pedigree index at
// path from the given pedigree. sourceName records where the pedigree
// came from in the Metadata table.
func WritePDI(path string, ped Pedigree, sourceName string) error {
	if err := ped.Validate(); err != nil {
		return err
	}

	idx, err := OpenPDI(path)
	if err != nil {
		return err
	}
	defer idx.Close()

	if _, err := idx.DB.Exec(pdiSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := idx.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Person"); err != nil {
		return pfx.Err(err)
	}
	if _, err := tx.Exec("DELETE FROM Metadata"); err != nil {
		return pfx.Err(err)
	}

	for _, name := range ped.Names() {
		person := ped[name]

		var mother, father, trait interface{}
		if person.Mother != "" {
			mother, father = person.Mother, person.Father
		}
		if person.Trait != nil {
			// Stored as 0/1 so both SQLite drivers bind it identically.
			trait = int64(boolToIndex(*person.Trait))
		}

		if _, err := tx.Exec(
			"INSERT INTO Person (name, mother, father, trait) VALUES (?, ?, ?, ?)",
			name, mother, father, trait,
		); err != nil {
			return pfx.Err(err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO Metadata (source_name, n_people, index_creation_time) VALUES (?, ?, ?)",
		sourceName, len(ped), time.Now().Unix(),
	); err != nil {
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
