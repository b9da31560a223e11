package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// skillsColumns holds the columns for the "skills" table.
	skillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "children_list", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "parent_id", Type: field.TypeInt64, Nullable: true},
	}
	// skillsTable holds the schema information for the "skills" table.
	skillsTable = &schema.Table{
		Name:       "skills",
		Columns:    skillsColumns,
		PrimaryKey: []*schema.Column{skillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "skills_skills_parent",
				Columns:    []*schema.Column{skillsColumns[3]},
				RefColumns: []*schema.Column{skillsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}

	// userSkillsColumns holds the columns for the "user_skills" table.
	userSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64, Default: 0},
		{Name: "skill_id", Type: field.TypeInt64},
	}
	// userSkillsTable holds the schema information for the "user_skills" table.
	userSkillsTable = &schema.Table{
		Name:       "user_skills",
		Columns:    userSkillsColumns,
		PrimaryKey: []*schema.Column{userSkillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_skills_skills_skill",
				Columns:    []*schema.Column{userSkillsColumns[3]},
				RefColumns: []*schema.Column{skillsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userskill_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{userSkillsColumns[1], userSkillsColumns[3]},
			},
		},
	}

	// tables holds all the tables in the schema, parents first.
	tables = []*schema.Table{
		skillsTable,
		userSkillsTable,
	}
)

func init() {
	skillsTable.ForeignKeys[0].RefTable = skillsTable
	userSkillsTable.ForeignKeys[0].RefTable = skillsTable
}
