package prompts

var words = []Word{
	{Word: "Obsession", Rhymes: []string{"Possession", "Progression", "Lesson"}},
	{Word: "Titanium", Rhymes: []string{"Cranium", "Uranium", "Stadium"}},
	{Word: "Mirage", Rhymes: []string{"Garage", "Collage", "Sabotage"}},
	{Word: "Renaissance", Rhymes: []string{"Response", "Sconce", "Nonce"}},
	{Word: "Velocity", Rhymes: []string{"Ferocity", "Atrocity", "Reciprocity"}},
	{Word: "Atmosphere", Rhymes: []string{"Last year", "Frontier", "Revere"}},
	{Word: "Sanctuary", Rhymes: []string{"January", "Cemetery", "Visionary"}},
	{Word: "Calamity", Rhymes: []string{"Humanity", "Vanity", "Insanity"}},
	{Word: "Labyrinth", Rhymes: []string{"Absinthe", "Hyacinth", "Platinum"}},
	{Word: "Metaphor", Rhymes: []string{"Step war", "Better for", "Get more"}},
	{Word: "Frequency", Rhymes: []string{"Recently", "Decently", "Sequencing"}},
	{Word: "Dynasty", Rhymes: []string{"Majesty", "Strategy", "Tragedy"}},
	{Word: "Anarchy", Rhymes: []string{"Hierarchy", "Panarchy", "Monarchally"}},
	{Word: "Prophecy", Rhymes: []string{"Policy", "Quality", "Honestly"}},
	{Word: "Eclipse", Rhymes: []string{"Scripts", "Lips", "Chips"}},
	{Word: "Blueprint", Rhymes: []string{"Footprint", "New hint", "True tint"}},
	{Word: "Havoc", Rhymes: []string{"Savage", "Average", "Baggage"}},
	{Word: "Revenge", Rhymes: []string{"Stonehenge", "Unbend", "Depend"}},
	{Word: "Pressure", Rhymes: []string{"Fresher", "Treasure", "Measure"}},
	{Word: "Legacy", Rhymes: []string{"Ecstasy", "Jealousy", "Embassy"}},
	{Word: "Concrete", Rhymes: []string{"On beat", "Street", "Elite"}},
	{Word: "Sovereign", Rhymes: []string{"Governing", "Hovering", "Discovering"}},
	{Word: "Miracle", Rhymes: []string{"Lyrical", "Empirical", "Spherical"}},
	{Word: "Paranoia", Rhymes: []string{"Destroy ya", "Lawyer", "Employer"}},
	{Word: "Vibration", Rhymes: []string{"Location", "Nation", "Patient"}},
	{Word: "Adrenaline", Rhymes: []string{"Medicine", "Genuine", "Better than"}},
	{Word: "Ambition", Rhymes: []string{"Ignition", "Partition", "Competition"}},
	{Word: "Anatomy", Rhymes: []string{"Academy", "Strategy", "Mastery"}},
	{Word: "Catastrophe", Rhymes: []string{"Philosophy", "Atrophy", "Apostrophe"}},
	{Word: "Chameleon", Rhymes: []string{"Million", "Civilian", "Pavilion"}},
	{Word: "Criminal", Rhymes: []string{"Subliminal", "Minimal", "Original"}},
	{Word: "Alchemy", Rhymes: []string{"Strategy", "Majesty", "Anatomy"}},
	{Word: "Midnight", Rhymes: []string{"Big fight", "Street light", "Sit tight"}},
	{Word: "Outcast", Rhymes: []string{"Doubt fast", "Mouth past", "South blast"}},
	{Word: "Victory", Rhymes: []string{"History", "Mystery", "Slippery"}},
	{Word: "Apocalypse", Rhymes: []string{"Eclipse", "Scripts", "Lips"}},
	{Word: "Architect", Rhymes: []string{"Respect", "Collect", "Direct"}},
	{Word: "Aspiration", Rhymes: []string{"Elevation", "Generation", "Nation"}},
	{Word: "Authentic", Rhymes: []string{"Septic", "Relentless", "Eccentric"}},
	{Word: "Cadence", Rhymes: []string{"Patience", "Radiance", "Silence"}},
	{Word: "Catalyst", Rhymes: []string{"Analyst", "Strategist", "Bat a fist"}},
	{Word: "Charisma", Rhymes: []string{"Prisma", "Enigma", "Stigma"}},
	{Word: "Cipher", Rhymes: []string{"Lifer", "Hyper", "Sniper"}},
	{Word: "Clarity", Rhymes: []string{"Charity", "Rarity", "Solidarity"}},
	{Word: "Collision", Rhymes: []string{"Precision", "Division", "Decision"}},
	{Word: "Conscience", Rhymes: []string{"Nonsense", "Response", "Scents"}},
	{Word: "Corruption", Rhymes: []string{"Eruption", "Interruption", "Destruction"}},
	{Word: "Darkness", Rhymes: []string{"Heartless", "Sharpness", "Regardless"}},
	{Word: "Deadline", Rhymes: []string{"Headline", "Redline", "Bedtime"}},
	{Word: "Defiance", Rhymes: []string{"Alliance", "Reliance", "Science"}},
	{Word: "Destiny", Rhymes: []string{"Testing me", "Question me", "Messily"}},
	{Word: "Dignity", Rhymes: []string{"Infinity", "Trinity", "Vicinity"}},
	{Word: "Dimension", Rhymes: []string{"Mention", "Tension", "Attention"}},
	{Word: "Duality", Rhymes: []string{"Reality", "Mentality", "Fatality"}},
	{Word: "Echo", Rhymes: []string{"Let go", "Ghetto", "Metro"}},
	{Word: "Elastic", Rhymes: []string{"Plastic", "Drastic", "Fantastic"}},
	{Word: "Electric", Rhymes: []string{"Hectic", "Eccentric", "Kinetic"}},
	{Word: "Emotion", Rhymes: []string{"Motion", "Devotion", "Ocean"}},
	{Word: "Empire", Rhymes: []string{"Fire", "Higher", "Wire"}},
	{Word: "Endurance", Rhymes: []string{"Assurance", "Insurance", "Occurrence"}},
	{Word: "Energy", Rhymes: []string{"Memory", "Enemy", "Remedy"}},
	{Word: "Enigma", Rhymes: []string{"Stigma", "Prisma", "Charisma"}},
	{Word: "Entropy", Rhymes: []string{"Atrophy", "Modesty", "Honesty"}},
	{Word: "Eternal", Rhymes: []string{"Internal", "Journal", "Infernal"}},
	{Word: "Euphoria", Rhymes: []string{"Victoria", "Gloria", "Story of"}},
	{Word: "Evolution", Rhymes: []string{"Revolution", "Solution", "Pollution"}},
	{Word: "Existence", Rhymes: []string{"Resistance", "Assistance", "Persistence"}},
	{Word: "Exodus", Rhymes: []string{"Focus", "Lotus", "Notice"}},
	{Word: "Fearless", Rhymes: []string{"Peerless", "Tearless", "Hear this"}},
	{Word: "Fortune", Rhymes: []string{"Soon", "Moon", "June"}},
	{Word: "Freedom", Rhymes: []string{"Kingdom", "Reason", "Season"}},
	{Word: "Frontier", Rhymes: []string{"Year", "Clear", "Fear"}},
	{Word: "Gravity", Rhymes: []string{"Strategy", "Tragedy", "Anatomy"}},
	{Word: "Harmony", Rhymes: []string{"Melody", "Remedy", "Felony"}},
	{Word: "Horizon", Rhymes: []string{"Rising", "Sizing", "Pricing"}},
	{Word: "Hunger", Rhymes: []string{"Younger", "Longer", "Stronger"}},
	{Word: "Identity", Rhymes: []string{"Entity", "Density", "Intensity"}},
	{Word: "Illusion", Rhymes: []string{"Confusion", "Inclusion", "Conclusion"}},
	{Word: "Infinite", Rhymes: []string{"In it", "Minute", "Limit"}},
	{Word: "Insomnia", Rhymes: []string{"California", "Warn ya", "On ya"}},
	{Word: "Instinct", Rhymes: []string{"Distinct", "Linked", "Sinked"}},
	{Word: "Journey", Rhymes: []string{"Attorney", "Early", "Worthy"}},
	{Word: "Justice", Rhymes: []string{"Trust us", "Adjust this", "Rustic"}},
}

var sentences = []string{
	"The city was loud, but his thoughts were louder.",
	"Empty pockets but a head full of blueprints.",
	"The finish line keeps moving every time I get close.",
	"I'm writing chapters in a book they'll never read.",
	"The static on the radio sounded like a warning.",
	"I traded my shadow for a chance to stand in the light.",
	"The throne is empty, but the room is full of wolves.",
	"I found the key, but they changed the lock yesterday.",
	"Concrete flowers growing through the cracks of the curb.",
	"The ink is heavy when the story is light.",
	"Neon lights flickering like a heartbeat in the rain.",
	"Silence is the loudest sound in a room full of fakes.",
	"I built a bridge out of the stones they threw at me.",
	"Buried the past but the ghost keeps digging it up.",
	"The wolves don't bark, they wait for you to sleep.",
	"The puzzle is finished, but there is one piece missing.",
	"A ghost in the machine, running through the static.",
	"The mirror doesn't lie, but it hides the scars.",
	"Counting blessings in a room full of curses.",
	"The horizon is a promise that the sun won't keep.",
	"Tracing constellations on a ceiling made of glass.",
	"The echo of a heartbeat in an empty hallway.",
	"Walking through the fire just to feel the breeze.",
	"The weight of the world is lighter than a lie.",
	"Silver linings tarnished by the smoke of the city.",
	"A compass that only points to where I've been.",
	"The rain writes poetry on the windowpane.",
	"Trading whispers for a chance to scream.",
	"A symphony of sirens playing in the distance.",
	"The taste of salt on a dream that's drifting away.",
	"Shadows dancing in the flicker of a dying candle.",
	"The architecture of a dream built on sand.",
	"Finding gold in the pockets of a tattered coat.",
	"The rhythm of the rails singing a lonesome song.",
	"A message in a bottle cast into a sea of ink.",
	"The gravity of the situation is pulling me down.",
	"Painting masterpieces on the walls of a cell.",
	"The anatomy of a heartbreak laid bare.",
	"A diamond in the rough, polished by the grit.",
	"The ghost of a smile on a face made of stone.",
	"The crown is heavy but I wear it like a habit.",
	"Watching the skyline bleed into a deep purple.",
	"Steel nerves in a city made of scrap metal.",
	"The pavement knows my name by the way I walk.",
	"Every scar is a map to a place I survived.",
	"I talk to the moon because the world won't listen.",
	"A cold wind blowing through the cracks of my ambition.",
	"I built this house on a foundation of 'no'.",
	"They want the fruit but they won't plant the seed.",
	"The skyline looks like a barcode for the rich.",
}

var motivation = []string{
	"Amateurs wait for inspiration. Pros get to work.",
	"Your first draft is allowed to be bad. Just finish it.",
	"Consistency beats talent every single time.",
	"The booth is your therapist. Be honest with the mic.",
	"A page a day is a book a year. Don't stop.",
	"Your future self is counting on you right now.",
	"Focus on the output, not the applause.",
	"Don't stop when you're tired; stop when you're done.",
	"Discipline is choosing between what you want now and what you want most.",
	"Your potential is a debt you owe to yourself.",
	"The only way out is through.",
	"Greatness is a lot of small things done well every day.",
	"Don't lower your expectations to meet your reality. Raise your level.",
	"Burn the boats. There's no going back.",
	"The grind doesn't know what day it is.",
	"Obsession will beat talent if talent doesn't work.",
	"Silence the inner critic with massive action.",
	"Your background is not your blueprint.",
	"Comfort is the enemy of growth.",
	"Don't tell them your plans. Show them your results.",
	"Everything you want is on the other side of fear.",
	"Be the person you needed when you were younger.",
	"Stay hungry. Stay foolish.",
	"Master the basics, then break the rules.",
	"Make it happen.",
	"Don't stop until you're proud.",
	"Push your limits.",
	"A little progress each day adds up to big results.",
	"Motivation is what gets you started. Habit is what keeps you going.",
	"Work hard in silence, let your success be your noise.",
	"When you feel like quitting, think about why you started.",
	"Pressure makes diamonds.",
	"Don't count the days, make the days count.",
	"The secret to success is found in your daily routine.",
	"If you're tired, learn to rest, not to quit.",
	"Your speed doesn't matter, forward is forward.",
	"Don't let yesterday take up too much of today.",
}
