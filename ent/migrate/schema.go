// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RewardsColumns holds the columns for the "rewards" table.
	RewardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reward_id", Type: field.TypeString, Unique: true},
		{Name: "step", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// RewardsTable holds the schema information for the "rewards" table.
	RewardsTable = &schema.Table{
		Name:       "rewards",
		Columns:    RewardsColumns,
		PrimaryKey: []*schema.Column{RewardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reward_step",
				Unique:  false,
				Columns: []*schema.Column{RewardsColumns[2]},
			},
			{
				Name:    "reward_active",
				Unique:  false,
				Columns: []*schema.Column{RewardsColumns[7]},
			},
		},
	}
	// TourEventsColumns holds the columns for the "tour_events" table.
	TourEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "interaction_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// TourEventsTable holds the schema information for the "tour_events" table.
	TourEventsTable = &schema.Table{
		Name:       "tour_events",
		Columns:    TourEventsColumns,
		PrimaryKey: []*schema.Column{TourEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tourevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TourEventsColumns[1]},
			},
			{
				Name:    "tourevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TourEventsColumns[2]},
			},
			{
				Name:    "tourevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{TourEventsColumns[4]},
			},
			{
				Name:    "tourevent_step",
				Unique:  false,
				Columns: []*schema.Column{TourEventsColumns[5]},
			},
			{
				Name:    "tourevent_action",
				Unique:  false,
				Columns: []*schema.Column{TourEventsColumns[6]},
			},
		},
	}
	// TourProgressesColumns holds the columns for the "tour_progresses" table.
	TourProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "current_step", Type: field.TypeString},
		{Name: "completed_steps", Type: field.TypeJSON, Nullable: true},
		{Name: "is_completed", Type: field.TypeBool, Default: false},
		{Name: "is_skipped", Type: field.TypeBool, Default: false},
		{Name: "step_data", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
	}
	// TourProgressesTable holds the schema information for the "tour_progresses" table.
	TourProgressesTable = &schema.Table{
		Name:       "tour_progresses",
		Columns:    TourProgressesColumns,
		PrimaryKey: []*schema.Column{TourProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tourprogress_user_id",
				Unique:  true,
				Columns: []*schema.Column{TourProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RewardsTable,
		TourEventsTable,
		TourProgressesTable,
	}
)

func init() {
}
