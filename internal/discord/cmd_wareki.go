package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

// Option names
const (
	OptionCode   = "code"
	OptionYear   = "year"
	OptionDigits = "digits"
)

var (
	minYear = float64(wareki.MinCodeYear)
	minCode = 1
)

var errMissingOption = errors.New("missing required option")

// WarekiCommand converts an era code such as M45 or 431.
func WarekiCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "wareki",
		Description: "Convert a Japanese era code (M45, H31, 431) to a Gregorian year",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionCode,
				Description: "Era letter or digit followed by a two-digit year",
				Required:    true,
				MinLength:   &minCode,
				MaxLength:   32,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client Converter) {
		options := getOptions(i)
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			opt, ok := options[OptionCode]
			if !ok {
				return "", errMissingOption
			}
			return convertMessage(ctx, client, opt.StringValue())
		}, ResponseConfig{Title: TitleConversion, Color: ColorSuccess})
	}

	return cmd, handler
}

// EraCodeCommand finds the era code for a Gregorian year.
func EraCodeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "era-code",
		Description: "Find the Japanese era code for a Gregorian year",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionYear,
				Description: fmt.Sprintf("Gregorian year (%d to %d)", wareki.MinCodeYear, wareki.MaxCodeYear),
				Required:    true,
				MinValue:    &minYear,
				MaxValue:    wareki.MaxCodeYear,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        OptionDigits,
				Description: "Use a digit prefix (431) instead of a letter (H31)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client Converter) {
		options := getOptions(i)
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			opt, ok := options[OptionYear]
			if !ok {
				return "", errMissingOption
			}
			digits := false
			if d, ok := options[OptionDigits]; ok {
				digits = d.BoolValue()
			}
			return eraCodeMessage(ctx, client, int(opt.IntValue()), digits)
		}, ResponseConfig{Title: TitleEraCode, Color: ColorSuccess})
	}

	return cmd, handler
}

func convertMessage(ctx context.Context, client Converter, code string) (string, error) {
	res, err := client.Convert(ctx, code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("**%s** is %s year %d, which is **%d**.", res.Code, res.Era, res.EraYear, res.GregorianYear), nil
}

func eraCodeMessage(ctx context.Context, client Converter, year int, digits bool) (string, error) {
	res, err := client.EraCode(ctx, year, digits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("**%d** is %s year %d: **%s**", res.Year, res.Era, res.EraYear, res.Code), nil
}
