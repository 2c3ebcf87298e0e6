package config

// Settings is the unified, format-agnostic representation of one
// configuration file. A nil field means the file did not set it.
type Settings struct {
	Source string

	MaxLineLength *int
	Jobs          *int
	Format        *string

	Select        []string
	Ignore        []string
	ExtendSelect  []string
	ExtendIgnore  []string
	Exclude       []string
	ExtendExclude []string
	Filename      []string

	PerFileIgnores map[string][]string

	ExitZero    *bool
	Count       *bool
	Statistics  *bool
	ShowSource  *bool
	DisableNoqa *bool
}

// Merge layers other on top of s. Fields set in other win; per-file ignores
// are merged pattern by pattern.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.Source != "" {
		if s.Source == "" {
			s.Source = other.Source
		} else {
			s.Source += "," + other.Source
		}
	}

	pick(&s.MaxLineLength, other.MaxLineLength)
	pick(&s.Jobs, other.Jobs)
	pick(&s.Format, other.Format)
	pick(&s.ExitZero, other.ExitZero)
	pick(&s.Count, other.Count)
	pick(&s.Statistics, other.Statistics)
	pick(&s.ShowSource, other.ShowSource)
	pick(&s.DisableNoqa, other.DisableNoqa)

	pickList(&s.Select, other.Select)
	pickList(&s.Ignore, other.Ignore)
	pickList(&s.ExtendSelect, other.ExtendSelect)
	pickList(&s.ExtendIgnore, other.ExtendIgnore)
	pickList(&s.Exclude, other.Exclude)
	pickList(&s.ExtendExclude, other.ExtendExclude)
	pickList(&s.Filename, other.Filename)

	if len(other.PerFileIgnores) > 0 {
		if s.PerFileIgnores == nil {
			s.PerFileIgnores = make(map[string][]string, len(other.PerFileIgnores))
		}
		for pattern, codes := range other.PerFileIgnores {
			s.PerFileIgnores[pattern] = codes
		}
	}
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func pickList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}
