package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars  Emoji = "📖" // reading configuration
	EmojiConfig   Emoji = "🔧" // showing configuration
	EmojiInternet Emoji = "🌐" // remote servers and network traffic

	EmojiUpdateRecord Emoji = "📡" // updating DNS records
	EmojiAlreadyDone  Emoji = "🤷" // DNS records were already up to date
	EmojiBye          Emoji = "👋" // bye!

	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
