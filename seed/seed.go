// Package seed holds the starter review dataset used when no persisted
// state exists yet.
package seed

import "github.com/maska-snacks/review-wall/model"

// Reviews returns a fresh copy of the seed dataset. Callers may mutate the
// returned slice freely.
func Reviews() []model.Review {
	return []model.Review{
		{
			ID:           "seed-1",
			Name:         "Priya Sharma",
			Rating:       5,
			Text:         "The chatpata masala hits different. Finished the whole pack during one episode and ordered three more.",
			Verified:     true,
			CreatedAt:    1755427200000,
			Image:        "/assets/maska-chatpata.jpg",
			HelpfulCount: 12,
			Replies: []model.Reply{
				{
					ID:        "seed-1-r1",
					Author:    model.BrandReplyAuthor,
					Text:      "Three more packs on the way, Priya. Happy snacking!",
					CreatedAt: 1755513600000,
				},
			},
		},
		{
			ID:           "seed-2",
			Name:         "Arjun Mehta",
			Rating:       4.5,
			Text:         "Crunchy, not too oily, and the portion is honest for the price. Would love a peri peri flavour next.",
			Verified:     true,
			CreatedAt:    1754908800000,
			HelpfulCount: 8,
		},
		{
			ID:           "seed-3",
			Name:         "Sneha Kulkarni",
			Rating:       5,
			Text:         "Ordered for a house party and the bowl was empty before the pizza arrived. Everyone asked where it was from.",
			Verified:     false,
			CreatedAt:    1754476800000,
			Image:        "/assets/maska-party.jpg",
			HelpfulCount: 15,
		},
		{
			ID:           "seed-4",
			Name:         "Rahul Nair",
			Rating:       3.5,
			Text:         "Good taste but my pack came slightly crushed. Delivery could be gentler with the packaging.",
			Verified:     true,
			CreatedAt:    1753958400000,
			HelpfulCount: 4,
			Replies: []model.Reply{
				{
					ID:        "seed-4-r1",
					Author:    model.BrandReplyAuthor,
					Text:      "Sorry about that, Rahul. We have switched to a sturdier box this month.",
					CreatedAt: 1754044800000,
				},
				{
					ID:        "seed-4-r2",
					Author:    "Arjun Mehta",
					Text:      "Mine arrived intact last week, looks like the new box works.",
					CreatedAt: 1754649600000,
				},
			},
		},
		{
			ID:           "seed-5",
			Name:         "Fatima Khan",
			Rating:       4,
			Text:         "Perfect chai-time snack. The masala level is right at the edge of too spicy, which is exactly where I want it.",
			Verified:     false,
			CreatedAt:    1753612800000,
			HelpfulCount: 6,
		},
		{
			ID:           "seed-6",
			Name:         "Vikram Singh",
			Rating:       2,
			Text:         "Too salty for my taste. My wife loved it though, so maybe it is just me.",
			Verified:     true,
			CreatedAt:    1753267200000,
			HelpfulCount: 2,
		},
		{
			ID:           "seed-7",
			Name:         "Ananya Iyer",
			Rating:       5,
			Text:         "Been hunting for a snack that tastes like the roadside packets from college days. This is it, minus the grease.",
			Verified:     true,
			CreatedAt:    1752921600000,
			Image:        "/assets/maska-bowl.jpg",
			HelpfulCount: 21,
		},
		{
			ID:           "seed-8",
			Name:         "Dev Patel",
			Rating:       4.5,
			Text:         "Subscribed for monthly delivery after the second pack. The resealable bag actually reseals, small thing but appreciated.",
			Verified:     false,
			CreatedAt:    1752576000000,
			HelpfulCount: 9,
		},
	}
}
