package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// commandDiff lists the command names a bulk overwrite would touch.
type commandDiff struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether the registered set already matches.
func (d commandDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// RegisterCommands overwrites the global command set when it differs from
// the registry. Discord rate limits bulk overwrites, so an unchanged set is
// left alone unless forceUpdate is set.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	existing, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desired := registry.List()
	diff := diffCommands(existing, desired)

	if !forceUpdate && diff.Empty() {
		slog.Info("Commands unchanged, skipping registration", "count", len(existing))
		return nil
	}

	slog.Info("Updating commands",
		"force", forceUpdate,
		"added", diff.Added,
		"removed", diff.Removed,
		"changed", diff.Changed)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desired))
	return nil
}

// List returns the registered commands sorted by name.
func (r *CommandRegistry) List() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

func diffCommands(existing, desired []*discordgo.ApplicationCommand) commandDiff {
	registered := make(map[string]string, len(existing))
	for _, cmd := range existing {
		registered[cmd.Name] = commandSignature(cmd)
	}

	var diff commandDiff
	for _, cmd := range desired {
		sig, ok := registered[cmd.Name]
		switch {
		case !ok:
			diff.Added = append(diff.Added, cmd.Name)
		case sig != commandSignature(cmd):
			diff.Changed = append(diff.Changed, cmd.Name)
		}
		delete(registered, cmd.Name)
	}
	for name := range registered {
		diff.Removed = append(diff.Removed, name)
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Changed)
	return diff
}

type optionSignature struct {
	Type        discordgo.ApplicationCommandOptionType `json:"type"`
	Name        string                                 `json:"name"`
	Description string                                 `json:"description"`
	Required    bool                                   `json:"required"`
	MinValue    *float64                               `json:"min_value,omitempty"`
	MaxValue    float64                                `json:"max_value,omitempty"`
	MaxLength   int                                    `json:"max_length,omitempty"`
	Choices     []choiceSignature                      `json:"choices,omitempty"`
	Options     []optionSignature                      `json:"options,omitempty"`
}

type choiceSignature struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// commandSignature is the canonical form of the user-visible parts of a
// command. Server-assigned fields (ID, version) are left out, and choice
// values go through JSON so 1 and 1.0 compare equal.
func commandSignature(cmd *discordgo.ApplicationCommand) string {
	sig := struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Permissions *int64            `json:"permissions,omitempty"`
		Options     []optionSignature `json:"options,omitempty"`
	}{
		Name:        cmd.Name,
		Description: cmd.Description,
		Permissions: cmd.DefaultMemberPermissions,
		Options:     optionSignatures(cmd.Options),
	}

	b, err := json.Marshal(sig)
	if err != nil {
		// Unreachable for these field types; force an update if it happens.
		return fmt.Sprintf("unencodable:%s", err)
	}
	return string(b)
}

func optionSignatures(opts []*discordgo.ApplicationCommandOption) []optionSignature {
	if len(opts) == 0 {
		return nil
	}
	sigs := make([]optionSignature, 0, len(opts))
	for _, o := range opts {
		s := optionSignature{
			Type:        o.Type,
			Name:        o.Name,
			Description: o.Description,
			Required:    o.Required,
			MinValue:    o.MinValue,
			MaxValue:    o.MaxValue,
			MaxLength:   o.MaxLength,
			Options:     optionSignatures(o.Options),
		}
		for _, c := range o.Choices {
			s.Choices = append(s.Choices, choiceSignature{Name: c.Name, Value: c.Value})
		}
		sigs = append(sigs, s)
	}
	return sigs
}
