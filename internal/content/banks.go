package content

// Theme names the verse bank chosen from the two weakest assessment domains.
type Theme string

const (
	ThemePeace    Theme = "peace"
	ThemeWisdom   Theme = "wisdom"
	ThemeGrace    Theme = "grace"
	ThemeStrength Theme = "strength"
)

// Bucket names the prayer bank chosen from the single weakest domain.
type Bucket string

const (
	BucketRestore   Bucket = "restore"
	BucketFocus     Bucket = "focus"
	BucketGratitude Bucket = "gratitude"
)

// Verse is one bank entry: a scripture reference and its text.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// verseBanks holds the rotation pool per theme. Bank order matters: the
// daily index is position-based, so reordering a bank changes which verse
// lands on which day.
var verseBanks = map[Theme][]Verse{
	ThemePeace: {
		{"Psalm 4:8", "In peace I will both lie down and sleep; for you alone, Lord, make me dwell in safety."},
		{"Isaiah 26:3", "You keep him in perfect peace whose mind is stayed on you, because he trusts in you."},
		{"Matthew 11:28", "Come to me, all who labor and are heavy laden, and I will give you rest."},
		{"Philippians 4:6-7", "Do not be anxious about anything, but in everything by prayer with thanksgiving let your requests be made known. And the peace of God will guard your hearts and minds."},
		{"John 14:27", "Peace I leave with you; my peace I give to you. Let not your hearts be troubled, neither let them be afraid."},
	},
	ThemeWisdom: {
		{"James 1:5", "If any of you lacks wisdom, let him ask God, who gives generously to all without reproach, and it will be given him."},
		{"Proverbs 3:5-6", "Trust in the Lord with all your heart, and do not lean on your own understanding. In all your ways acknowledge him, and he will make straight your paths."},
		{"Psalm 90:12", "So teach us to number our days that we may get a heart of wisdom."},
		{"Proverbs 16:3", "Commit your work to the Lord, and your plans will be established."},
	},
	ThemeGrace: {
		{"1 Peter 4:8", "Above all, keep loving one another earnestly, since love covers a multitude of sins."},
		{"Ephesians 4:32", "Be kind to one another, tenderhearted, forgiving one another, as God in Christ forgave you."},
		{"Colossians 3:13", "Bear with one another and, if one has a complaint against another, forgive each other; as the Lord has forgiven you, so you also must forgive."},
		{"1 Corinthians 13:4-5", "Love is patient and kind; love does not envy or boast; it is not arrogant or rude. It does not insist on its own way."},
	},
	ThemeStrength: {
		{"Isaiah 40:31", "They who wait for the Lord shall renew their strength; they shall mount up with wings like eagles; they shall run and not be weary."},
		{"Philippians 4:13", "I can do all things through him who strengthens me."},
		{"Joshua 1:9", "Be strong and courageous. Do not be frightened, and do not be dismayed, for the Lord your God is with you wherever you go."},
		{"Psalm 46:1", "God is our refuge and strength, a very present help in trouble."},
		{"2 Timothy 1:7", "For God gave us a spirit not of fear but of power and love and self-control."},
	},
}

// messageBanks holds the prayer templates per bucket. Every template carries
// a {name} placeholder interpolated at selection time.
var messageBanks = map[Bucket][]string{
	BucketRestore: {
		"Father, grant {name} deep rest tonight. Quiet what the day stirred up and restore what it drained.",
		"Lord, {name} is running on empty. Rebuild strength from the inside out, one honest night of sleep at a time.",
		"God of rest, slow {name}'s breathing and loosen the grip of the day. Let recovery do its quiet work.",
	},
	BucketFocus: {
		"Lord, gather {name}'s scattered attention and set it on the one thing that matters most today.",
		"Father, give {name} a steady mind. Cut through the noise and make the next step plain.",
		"God, strengthen {name}'s resolve. When the hard part of the day comes, keep the commitment whole.",
	},
	BucketGratitude: {
		"Father, open {name}'s eyes to every good thing already in hand. Gratitude first, everything else after.",
		"Lord, teach {name} to hold this day loosely and thankfully, trusting you with whatever it brings.",
		"God, thank you for the breath in {name}'s lungs and the day ahead. Make something good of both.",
	},
}
