package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	tableLists         = "practice_lists"
	tableConfigs       = "practice_configurations"
	tableWords         = "practice_words"
	tableSessions      = "practice_sessions"
	tableResults       = "configuration_results"
	tablePreferences   = "preferences"
	tableLLMEvents     = "llm_request_events"
	colID              = "id"
	colListID          = "list_id"
	colConfigurationID = "configuration_id"
	colSessionID       = "session_id"
	colCreatedAt       = "created_at"
)

var (
	// PracticeListsColumns holds the columns for the "practice_lists" table.
	PracticeListsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: colCreatedAt, Type: field.TypeInt64},
		{Name: "last_practiced_at", Type: field.TypeInt64, Nullable: true},
	}
	PracticeListsTable = &schema.Table{
		Name:       tableLists,
		Columns:    PracticeListsColumns,
		PrimaryKey: []*schema.Column{PracticeListsColumns[0]},
	}

	// PracticeConfigurationsColumns holds the columns for the
	// "practice_configurations" table.
	PracticeConfigurationsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: "phoneme_symbol", Type: field.TypeString},
		{Name: "phoneme_name", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "position", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: colCreatedAt, Type: field.TypeInt64},
		{Name: colListID, Type: field.TypeString},
	}
	PracticeConfigurationsTable = &schema.Table{
		Name:       tableConfigs,
		Columns:    PracticeConfigurationsColumns,
		PrimaryKey: []*schema.Column{PracticeConfigurationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_configurations_practice_lists_configurations",
				Columns:    []*schema.Column{PracticeConfigurationsColumns[7]},
				RefColumns: []*schema.Column{PracticeListsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "practiceconfiguration_list_id_phoneme_symbol", Columns: []*schema.Column{PracticeConfigurationsColumns[7], PracticeConfigurationsColumns[1]}},
		},
	}

	// PracticeWordsColumns holds the columns for the "practice_words" table.
	PracticeWordsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "phoneme_index", Type: field.TypeInt},
		{Name: "position", Type: field.TypeString},
		{Name: colConfigurationID, Type: field.TypeString},
	}
	PracticeWordsTable = &schema.Table{
		Name:       tableWords,
		Columns:    PracticeWordsColumns,
		PrimaryKey: []*schema.Column{PracticeWordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_words_practice_configurations_words",
				Columns:    []*schema.Column{PracticeWordsColumns[4]},
				RefColumns: []*schema.Column{PracticeConfigurationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "practiceword_configuration_id", Columns: []*schema.Column{PracticeWordsColumns[4]}},
		},
	}

	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: "date", Type: field.TypeInt64},
		{Name: "total_words", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "incorrect_count", Type: field.TypeInt},
		{Name: "skipped_count", Type: field.TypeInt},
		{Name: colListID, Type: field.TypeString},
	}
	PracticeSessionsTable = &schema.Table{
		Name:       tableSessions,
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_sessions_practice_lists_sessions",
				Columns:    []*schema.Column{PracticeSessionsColumns[6]},
				RefColumns: []*schema.Column{PracticeListsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "practicesession_list_id_date", Columns: []*schema.Column{PracticeSessionsColumns[6], PracticeSessionsColumns[1]}},
		},
	}

	// ConfigurationResultsColumns holds the columns for the
	// "configuration_results" table. configuration_id is a snapshot, not a
	// foreign key, so history survives configuration deletes.
	ConfigurationResultsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: colConfigurationID, Type: field.TypeString},
		{Name: "phoneme_symbol", Type: field.TypeString},
		{Name: "total_words", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "incorrect_count", Type: field.TypeInt},
		{Name: "skipped_count", Type: field.TypeInt},
		{Name: colSessionID, Type: field.TypeString},
	}
	ConfigurationResultsTable = &schema.Table{
		Name:       tableResults,
		Columns:    ConfigurationResultsColumns,
		PrimaryKey: []*schema.Column{ConfigurationResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "configuration_results_practice_sessions_results",
				Columns:    []*schema.Column{ConfigurationResultsColumns[7]},
				RefColumns: []*schema.Column{PracticeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
	}
	PreferencesTable = &schema.Table{
		Name:       tablePreferences,
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}

	// LLMRequestEventsColumns holds the columns for the
	// "llm_request_events" table.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	LLMRequestEventsTable = &schema.Table{
		Name:       tableLLMEvents,
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LLMRequestEventsColumns[4]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PracticeListsTable,
		PracticeConfigurationsTable,
		PracticeWordsTable,
		PracticeSessionsTable,
		ConfigurationResultsTable,
		PreferencesTable,
		LLMRequestEventsTable,
	}
)

func init() {
	PracticeConfigurationsTable.ForeignKeys[0].RefTable = PracticeListsTable
	PracticeWordsTable.ForeignKeys[0].RefTable = PracticeConfigurationsTable
	PracticeSessionsTable.ForeignKeys[0].RefTable = PracticeListsTable
	ConfigurationResultsTable.ForeignKeys[0].RefTable = PracticeSessionsTable
}
