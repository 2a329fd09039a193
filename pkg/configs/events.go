package configs

import "github.com/spf13/viper"

// EventsConfig gates lifecycle event publication globally and per topic.
type EventsConfig struct {
	Enabled bool             `mapstructure:"enabled"`
	Node    NodeEventsConfig `mapstructure:"node"`
}

// NodeEventsConfig switches individual node lifecycle topics.
type NodeEventsConfig struct {
	Uploaded      bool `mapstructure:"uploaded"`
	FolderCreated bool `mapstructure:"folder_created"`
	Trashed       bool `mapstructure:"trashed"`
	Restored      bool `mapstructure:"restored"`
	Deleted       bool `mapstructure:"deleted"`
	TrashEmptied  bool `mapstructure:"trash_emptied"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("events.enabled", true)

	// The minimal useful set is on by default; toggles for the chattier
	// topics stay off until someone consumes them.
	v.SetDefault("events.node.uploaded", true)
	v.SetDefault("events.node.deleted", true)
	v.SetDefault("events.node.trash_emptied", true)

	v.SetDefault("events.node.folder_created", false)
	v.SetDefault("events.node.trashed", false)
	v.SetDefault("events.node.restored", false)
}
