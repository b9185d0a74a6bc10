package discord

import "github.com/osse101/WarekiBot_Go/pkg/wareki"

// Friendly message constants for Discord responses
const (
	MsgInvalidLength  = "📏 **Wrong Length**\nAn era code is exactly three characters, like `M45` or `431`."
	MsgInvalidYear    = "🔢 **Bad Year**\nThe last two characters must be digits."
	MsgYearTooLow     = "0️⃣ **Year Zero**\nEra years start at 01."
	MsgUnknownEra     = "❓ **Unknown Era**\nUse M, T, S, H, R or 1 to 5."
	MsgYearOutOfRange = "📅 **No Code**\nOnly years 1868 to 2117 have a three-character code."

	MsgAPIUnavailable = "Error connecting to the conversion service."
	MsgGenericError   = "❌ Something went wrong."
)

// Embed titles and colors
const (
	TitleConversion = "🗓️ Era Conversion"
	TitleEraCode    = "🔁 Era Code"
	TitleRejected   = "⚠️ Not Converted"

	ColorSuccess  = 0x2ecc71
	ColorRejected = 0xe67e22
)

// Footer text for every embed
const FooterWarekiBot = "WarekiBot"

var kindMessages = map[wareki.ErrorKind]string{
	wareki.InvalidLength:  MsgInvalidLength,
	wareki.InvalidYear:    MsgInvalidYear,
	wareki.YearTooLow:     MsgYearTooLow,
	wareki.UnknownEra:     MsgUnknownEra,
	wareki.YearOutOfRange: MsgYearOutOfRange,
}
