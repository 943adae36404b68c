// SPDX-License-Identifier: MPL-2.0

package schemafile

type (
	// Document is the root of a schema file. Its commands nest recursively.
	//
	// CUE and TOML documents use the json/toml field names. In HCL the root name is an
	// attribute while arguments and commands are labelled blocks:
	//
	//	name = "app"
	//	arg "verbose" {
	//	  kind  = "flag"
	//	  short = "v"
	//	}
	//	command "build" {
	//	  arg "target" { kind = "positional" }
	//	}
	Document struct {
		Name               string       `json:"name" toml:"name" hcl:"name"`
		Description        string       `json:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
		SubcommandRequired bool         `json:"subcommand_required,omitempty" toml:"subcommand_required,omitempty" hcl:"subcommand_required,optional"`
		Exclusive          [][]string   `json:"exclusive,omitempty" toml:"exclusive,omitempty" hcl:"exclusive,optional"`
		Args               []ArgDoc     `json:"args,omitempty" toml:"args,omitempty" hcl:"arg,block"`
		Commands           []CommandDoc `json:"commands,omitempty" toml:"commands,omitempty" hcl:"command,block"`
	}

	// CommandDoc is a subcommand. Its name is the block label in HCL.
	CommandDoc struct {
		Name               string       `json:"name" toml:"name" hcl:"name,label"`
		Description        string       `json:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
		SubcommandRequired bool         `json:"subcommand_required,omitempty" toml:"subcommand_required,omitempty" hcl:"subcommand_required,optional"`
		Exclusive          [][]string   `json:"exclusive,omitempty" toml:"exclusive,omitempty" hcl:"exclusive,optional"`
		Args               []ArgDoc     `json:"args,omitempty" toml:"args,omitempty" hcl:"arg,block"`
		Commands           []CommandDoc `json:"commands,omitempty" toml:"commands,omitempty" hcl:"command,block"`
	}

	// ArgDoc declares one argument. Kind is required; everything else is optional.
	// Flags and options with neither Short nor Long get Long = ID.
	ArgDoc struct {
		ID           string   `json:"id" toml:"id" hcl:"id,label"`
		Kind         string   `json:"kind" toml:"kind" hcl:"kind"`
		Short        string   `json:"short,omitempty" toml:"short,omitempty" hcl:"short,optional"`
		Long         string   `json:"long,omitempty" toml:"long,omitempty" hcl:"long,optional"`
		Arity        string   `json:"arity,omitempty" toml:"arity,omitempty" hcl:"arity,optional"`
		Type         string   `json:"type,omitempty" toml:"type,omitempty" hcl:"type,optional"`
		Choices      []string `json:"choices,omitempty" toml:"choices,omitempty" hcl:"choices,optional"`
		IntBits      int      `json:"int_bits,omitempty" toml:"int_bits,omitempty" hcl:"int_bits,optional"`
		Default      *string  `json:"default,omitempty" toml:"default,omitempty" hcl:"default,optional"`
		Defaults     []string `json:"defaults,omitempty" toml:"defaults,omitempty" hcl:"defaults,optional"`
		Env          string   `json:"env,omitempty" toml:"env,omitempty" hcl:"env,optional"`
		EnvDelimiter string   `json:"env_delimiter,omitempty" toml:"env_delimiter,omitempty" hcl:"env_delimiter,optional"`
		Required     bool     `json:"required,omitempty" toml:"required,omitempty" hcl:"required,optional"`
		Global       bool     `json:"global,omitempty" toml:"global,omitempty" hcl:"global,optional"`
		Description  string   `json:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
		ValueName    string   `json:"value_name,omitempty" toml:"value_name,omitempty" hcl:"value_name,optional"`
		Min          *float64 `json:"min,omitempty" toml:"min,omitempty" hcl:"min,optional"`
		Max          *float64 `json:"max,omitempty" toml:"max,omitempty" hcl:"max,optional"`
		Pattern      string   `json:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
		DirExists    bool     `json:"dir_exists,omitempty" toml:"dir_exists,omitempty" hcl:"dir_exists,optional"`
	}
)

// command returns the root as a CommandDoc so the tree can be converted uniformly.
func (d *Document) command() CommandDoc {
	return CommandDoc{
		Name:               d.Name,
		Description:        d.Description,
		SubcommandRequired: d.SubcommandRequired,
		Exclusive:          d.Exclusive,
		Args:               d.Args,
		Commands:           d.Commands,
	}
}
