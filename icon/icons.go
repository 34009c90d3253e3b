package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Audio
	Muted
	Watermark
	Clean
	Streaming
	Link
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(x_x)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(^o^)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "..",
		kaomoji: "(o_o)",
		squares: "🟦",
	},
	Mark: {
		emoji:   "👉",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>_<)",
		squares: "🟨",
	},
	Audio: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "A",
		kaomoji: "(♪)",
		squares: "🟪",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "-",
		kaomoji: "(-_-)",
		squares: "⬛",
	},
	Watermark: {
		emoji:   "💧",
		nerd:    "",
		plain:   "W",
		kaomoji: "(~_~)",
		squares: "🟫",
	},
	Clean: {
		emoji:   "✨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*_*)",
		squares: "⬜",
	},
	Streaming: {
		emoji:   "📡",
		nerd:    "",
		plain:   "~",
		kaomoji: "(~o~)",
		squares: "🟧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(@_@)",
		squares: "🔳",
	},
}
