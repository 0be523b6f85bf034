// Package schema describes the relational layout of the NGS catalogue
// and the rules for deriving expected metadata fields from the field
// schema document.
package schema

// Lookup describes a table that holds a unique set of names referenced
// by the assay table.
type Lookup struct {
	// Table is the name of the lookup table.
	Table string

	// ID is the primary key column.
	ID string

	// Name is the unique column holding the value.
	Name string

	// Fields are metadata fields that provide values for the table.
	Fields []string
}

// Column maps a metadata field to a column of the assay table.
type Column struct {
	// Field is the metadata field name.
	Field string

	// Name is the column of the assay table.
	Name string

	// Lookup is set when the column is a foreign key resolved by name.
	Lookup *Lookup
}

var (
	// SequencingKits holds sequencing kit names.
	SequencingKits = Lookup{
		Table:  "sequencing_kits",
		ID:     "seq_id",
		Name:   "kit",
		Fields: []string{"seq_kit"},
	}

	// Sequencers holds sequencer models.
	Sequencers = Lookup{
		Table:  "sequencers",
		ID:     "seq_id",
		Name:   "model",
		Fields: []string{"sequencer"},
	}

	// Users holds people who own or processed assays.
	Users = Lookup{
		Table:  "users",
		ID:     "user_id",
		Name:   "first_last_name",
		Fields: []string{"owner", "processed_by"},
	}

	// Pipelines holds names of processing pipelines.
	Pipelines = Lookup{
		Table:  "pipelines",
		ID:     "pipeline_id",
		Name:   "pipeline_name",
		Fields: []string{"pipeline"},
	}
)

// Lookups returns lookup tables in the order they are populated.
func Lookups() []Lookup {
	return []Lookup{SequencingKits, Sequencers, Users, Pipelines}
}

// AssayTable is the name of the main catalogue table.
const AssayTable = "assay"

// AssayIDField is the metadata field with the assay identifier. When a
// record does not have it, the name of the assay directory is used.
const AssayIDField = "assay_id"

// AssayColumns returns the ordered columns of the assay table.
func AssayColumns() []Column {
	return []Column{
		{Field: AssayIDField, Name: "id"},
		{Field: "assay", Name: "assay"},
		{Field: "owner", Name: "owner_id", Lookup: &Users},
		{Field: "date", Name: "created_on"},
		{Field: "eln_id", Name: "eln_id"},
		{Field: "technology", Name: "technology"},
		{Field: "sequencer", Name: "sequencer_id", Lookup: &Sequencers},
		{Field: "seq_kit", Name: "seq_kit_id", Lookup: &SequencingKits},
		{Field: "n_samples", Name: "n_samples"},
		{Field: "is_paired", Name: "is_paired"},
		{Field: "pipeline", Name: "pipeline_id", Lookup: &Pipelines},
		{Field: "processed_by", Name: "processed_by_id", Lookup: &Users},
		{Field: "organism", Name: "organism"},
		{Field: "organism_version", Name: "organism_version"},
		{Field: "organism_subgroup", Name: "organism_subgroup"},
		{Field: "origin", Name: "origin"},
		{Field: "short_desc", Name: "short_desc"},
		{Field: "long_desc", Name: "long_desc"},
		{Field: "note", Name: "note"},
		{Field: "genomics_path", Name: "genomics_path"},
	}
}

// AssayFields returns metadata fields of AssayColumns in order.
func AssayFields() []string {
	cols := AssayColumns()
	res := make([]string, len(cols))
	for i := range cols {
		res[i] = cols[i].Field
	}
	return res
}
