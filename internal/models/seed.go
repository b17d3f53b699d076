package models

import "time"

// Demo authors referenced by the seed data.
var seedAuthors = []struct{ ID, Name string }{
	{"user_seed_1", "Sarah Johnson"},
	{"user_seed_2", "Michael Chen"},
	{"user_seed_3", "Emily Rodriguez"},
	{"user_seed_4", "James Wilson"},
	{"user_seed_5", "Lisa Anderson"},
}

// SeedListings returns the demo feed with creation times relative to now.
func SeedListings(now time.Time) []Listing {
	return []Listing{
		{
			ID:          "post_1",
			AuthorID:    seedAuthors[0].ID,
			AuthorName:  seedAuthors[0].Name,
			Status:      StatusLost,
			ItemName:    "Blue Nike Backpack",
			Location:    "Library Building - 2nd Floor",
			Place:       "Near Study Table 12",
			Description: "Lost my blue Nike backpack with laptop inside. Has a small keychain attached. Please contact if found. Very important documents inside.",
			ImageRef:    "https://via.placeholder.com/600x400/667eea/FFFFFF?text=Blue+Backpack",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "post_2",
			AuthorID:    seedAuthors[1].ID,
			AuthorName:  seedAuthors[1].Name,
			Status:      StatusFound,
			ItemName:    "iPhone 13 Pro",
			Location:    "Student Cafeteria",
			Place:       "Table near the main entrance",
			Description: "Found an iPhone 13 Pro in black color. It has a cracked screen protector. Currently with campus security. Contact with proof of ownership.",
			ImageRef:    "https://via.placeholder.com/600x400/4ECDC4/FFFFFF?text=iPhone+13",
			CreatedAt:   now.Add(-4 * time.Hour),
		},
		{
			ID:          "post_3",
			AuthorID:    seedAuthors[2].ID,
			AuthorName:  seedAuthors[2].Name,
			Status:      StatusLost,
			ItemName:    "Silver Water Bottle",
			Location:    "Sports Complex - Basketball Court",
			Place:       "Bleachers section",
			Description: "Lost my Hydro Flask water bottle. Silver color with custom stickers. Has my name engraved at the bottom. Sentimental value.",
			ImageRef:    "https://via.placeholder.com/600x400/45B7D1/FFFFFF?text=Water+Bottle",
			CreatedAt:   now.Add(-6 * time.Hour),
		},
		{
			ID:          "post_4",
			AuthorID:    seedAuthors[3].ID,
			AuthorName:  seedAuthors[3].Name,
			Status:      StatusFound,
			ItemName:    "Black Leather Wallet",
			Location:    "Engineering Building - Lab 3",
			Place:       "Under desk near window",
			Description: "Found a black leather wallet containing some cash and cards. Please describe the contents to claim it. Contact me with details.",
			ImageRef:    "https://via.placeholder.com/600x400/FFA07A/FFFFFF?text=Wallet",
			CreatedAt:   now.Add(-8 * time.Hour),
		},
		{
			ID:          "post_5",
			AuthorID:    seedAuthors[4].ID,
			AuthorName:  seedAuthors[4].Name,
			Status:      StatusLost,
			ItemName:    "AirPods Pro Case",
			Location:    "Main Auditorium",
			Place:       "Seat B-24",
			Description: "Lost my white AirPods Pro charging case. Has a small scratch on the back. The AirPods were inside. Really need them back!",
			ImageRef:    "https://via.placeholder.com/600x400/98D8C8/FFFFFF?text=AirPods",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
	}
}

// SeedConversations returns the demo inbox. Messages written by the local
// user carry SelfSender.
func SeedConversations(now time.Time) []Conversation {
	msg := func(id, sender, text string, ago time.Duration) Message {
		return Message{ID: id, SenderID: sender, Text: text, SentAt: now.Add(-ago)}
	}
	thread := func(id string, author int, subject string, msgs ...Message) Conversation {
		last := msgs[len(msgs)-1]
		return Conversation{
			ID:              id,
			CounterpartID:   seedAuthors[author].ID,
			CounterpartName: seedAuthors[author].Name,
			SubjectLabel:    subject,
			LastMessage:     last.Text,
			LastActivity:    last.SentAt,
			Messages:        msgs,
		}
	}

	return []Conversation{
		thread("conv_1", 1, "About: iPhone 13 Pro",
			msg("msg_1_1", SelfSender, "Hi, is the iPhone still available?", 25*time.Minute),
			msg("msg_1_2", seedAuthors[1].ID, "Yes, I still have it. When can you pick it up?", 10*time.Minute),
		),
		thread("conv_2", 2, "About: Silver Water Bottle",
			msg("msg_2_1", seedAuthors[2].ID, "I found a similar bottle at the gym", 75*time.Minute),
			msg("msg_2_2", SelfSender, "Can you send me a photo?", 60*time.Minute),
		),
		thread("conv_3", 3, "About: Black Leather Wallet",
			msg("msg_3_1", SelfSender, "I think that might be my wallet", 3*time.Hour+30*time.Minute),
			msg("msg_3_2", seedAuthors[3].ID, "The wallet has a student ID inside", 3*time.Hour),
		),
	}
}
