package config

// Options is a partial configuration as written by a user, in a magic comment
// or in the project configuration file. Nil fields are unset and leave the
// base configuration untouched when applied.
type Options struct {
	Type               *SortType      `yaml:"type" mapstructure:"type"`
	Order              *Order         `yaml:"order" mapstructure:"order"`
	IgnoreCase         *bool          `yaml:"ignore-case" mapstructure:"ignore-case"`
	PartitionByComment *Partitioning  `yaml:"partition-by-comment" mapstructure:"partition-by-comment"`
	PartitionByNewLine *bool          `yaml:"partition-by-new-line" mapstructure:"partition-by-new-line"`
	Groups             GroupOrdering  `yaml:"groups" mapstructure:"groups"`
	CustomGroups       CustomGroups   `yaml:"custom-groups" mapstructure:"custom-groups"`
	PatternSyntax      *PatternSyntax `yaml:"pattern-syntax" mapstructure:"pattern-syntax"`
	DeprecatedAtEnd    *bool          `yaml:"deprecated-at-end" mapstructure:"deprecated-at-end"`
	Key                *string        `yaml:"key" mapstructure:"key"`
	SortByComment      *bool          `yaml:"sort-by-comment" mapstructure:"sort-by-comment"`
}

// Apply overlays the set fields of o onto base.
func (o Options) Apply(base SortConfig) SortConfig {
	out := base
	if o.Type != nil {
		out.Type = *o.Type
	}
	if o.Order != nil {
		out.Order = *o.Order
	}
	if o.IgnoreCase != nil {
		out.IgnoreCase = *o.IgnoreCase
	}
	if o.PartitionByComment != nil {
		out.PartitionByComment = *o.PartitionByComment
	}
	if o.PartitionByNewLine != nil {
		out.PartitionByNewLine = *o.PartitionByNewLine
	}
	if o.Groups != nil {
		out.Groups = append(GroupOrdering(nil), o.Groups...)
	}
	if o.CustomGroups != nil {
		out.CustomGroups = append(CustomGroups(nil), o.CustomGroups...)
	}
	if o.PatternSyntax != nil {
		out.PatternSyntax = *o.PatternSyntax
	}
	if o.DeprecatedAtEnd != nil {
		out.DeprecatedAtEnd = *o.DeprecatedAtEnd
	}
	if o.Key != nil {
		out.Key = *o.Key
	}
	if o.SortByComment != nil {
		out.SortByComment = *o.SortByComment
	}
	return out
}

// Resolve applies o to the defaults and validates the result.
func (o Options) Resolve() (SortConfig, error) {
	cfg := o.Apply(Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
