package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/wayfind"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/ingestion"
)

// sampleDataset is a small built-in candidate set used when no --src
// file is given. Keys are intent labels, values are candidate objects
// in the shape the intent's schema describes.
const sampleDataset = `{
    "restaurant": [
        {
            "Country": "Italy",
            "City": "Rome",
            "RestaurantName": "Trattoria del Ponte",
            "TypeOfCuisine": "Italian",
            "MealsServed": "Lunch, Dinner",
            "RecommendedDish": "Cacio e pepe",
            "MealDescription": "Family-run trattoria near the Tiber serving handmade pasta and classic Roman dishes.",
            "AvgPricePerPersonInUSD": "18",
            "BudgetRange": "10-25",
            "Suitability": "Families, Couples"
        },
        {
            "Country": "Japan",
            "City": "Tokyo",
            "RestaurantName": "Sakura Garden",
            "TypeOfCuisine": "Japanese",
            "MealsServed": "Dinner",
            "RecommendedDish": "Seasonal kaiseki course",
            "MealDescription": "Seasonal kaiseki dining with a quiet garden view in the Asakusa district.",
            "AvgPricePerPersonInUSD": "45",
            "BudgetRange": "35-60",
            "Suitability": "Couples"
        },
        {
            "Country": "France",
            "City": "Paris",
            "RestaurantName": "Le Petit Marche",
            "TypeOfCuisine": "French",
            "MealsServed": "Dinner",
            "RecommendedDish": "Duck confit",
            "MealDescription": "Intimate bistro offering a tasting menu built around the morning market haul.",
            "AvgPricePerPersonInUSD": "95",
            "BudgetRange": "80-120",
            "Suitability": "Couples, Business"
        },
        {
            "Country": "Egypt",
            "City": "Cairo",
            "RestaurantName": "Nile View Kitchen",
            "TypeOfCuisine": "Egyptian",
            "MealsServed": "Breakfast, Lunch, Dinner",
            "RecommendedDish": "Koshari",
            "MealDescription": "Riverside spot known for koshari, grilled pigeon, and fresh sugarcane juice.",
            "AvgPricePerPersonInUSD": "12",
            "BudgetRange": "5-15",
            "Suitability": "Families, Solo travelers"
        }
    ],
    "accommodation": [
        {
            "Country": "Czech Republic",
            "City": "Prague",
            "AccommodationName": "Hostel Aurora",
            "AccommodationDetails": "Sociable hostel in the old town with shared kitchens and nightly walking tours.",
            "Type": "Hostel",
            "AvgNightPriceInUSD": "22"
        },
        {
            "Country": "Singapore",
            "City": "Singapore",
            "AccommodationName": "The Meridian Grand",
            "AccommodationDetails": "Five-star tower with a rooftop infinity pool overlooking Marina Bay.",
            "Type": "Luxury hotel",
            "AvgNightPriceInUSD": "240"
        },
        {
            "Country": "Mexico",
            "City": "Mexico City",
            "AccommodationName": "Casa Flores",
            "AccommodationDetails": "Restored colonial house in Roma Norte with a leafy central courtyard.",
            "Type": "Boutique hotel",
            "AvgNightPriceInUSD": "65"
        }
    ],
    "activity": [
        {
            "Country": "Vietnam",
            "City": "Hanoi",
            "Activity": "Old Town Food Walk",
            "Description": "Guided street food tour through the thirty-six streets of the old quarter.",
            "TypeOfTraveler": "Foodies",
            "Duration": "3 hours",
            "BudgetInUSD": "25",
            "BudgetDetails": "Includes six tastings and a drink",
            "TipsAndRecommendations": "Go hungry and bring small bills.",
            "For": "Solo travelers, Couples",
            "FamilyFriendly": "Yes",
            "Category": "Food"
        },
        {
            "Country": "Turkey",
            "City": "Cappadocia",
            "Activity": "Sunrise Hot Air Balloon",
            "Description": "Dawn balloon flight over the fairy chimneys and valleys of Goreme.",
            "TypeOfTraveler": "Adventure seekers",
            "Duration": "1 hour",
            "BudgetInUSD": "180",
            "BudgetDetails": "Hotel pickup and breakfast included",
            "TipsAndRecommendations": "Book a clear morning and dress warmly.",
            "For": "Couples",
            "FamilyFriendly": "No",
            "Category": "Adventure"
        }
    ],
    "dish": [
        {
            "Country": "Thailand",
            "City": "Bangkok",
            "DishName": "Pad Thai",
            "DishDetails": "Stir-fried rice noodles with tamarind, peanuts, and river prawns.",
            "Type": "Street food",
            "AvgPriceInUSD": "3",
            "BestFor": "Lunch"
        },
        {
            "Country": "Morocco",
            "City": "Marrakech",
            "DishName": "Tagine of Lamb",
            "DishDetails": "Slow-cooked lamb with preserved lemon and olives in a clay pot.",
            "Type": "Traditional",
            "AvgPriceInUSD": "9",
            "BestFor": "Dinner"
        }
    ],
    "visa": [
        {
            "Country": "Japan",
            "Question": "Do US citizens need a visa for Japan?",
            "Answer": "US citizens can stay in Japan visa-free for up to 90 days for tourism purposes."
        },
        {
            "Country": "France",
            "Question": "How do I apply for a Schengen visa?",
            "Answer": "Apply at the consulate of the country of main stay with a completed form, travel insurance, itinerary, and proof of funds, at least 15 days before travel."
        }
    ],
    "seasonal": [
        {
            "Country": "Iceland",
            "Question": "When is the best time to visit Iceland?",
            "Answer": "June through August offers mild weather and the midnight sun, while September to March is best for northern lights."
        }
    ],
    "transport": [
        {
            "Country": "Japan",
            "From": "Tokyo",
            "To": "Kyoto",
            "TransportMode": "Shinkansen",
            "Provider": "JR Central",
            "Schedule": "Several departures per hour from 06:00 to 21:30",
            "RouteInfo": "High-speed rail connecting Tokyo with Kyoto in under three hours.",
            "DurationInHours": "2.5",
            "PriceRangeInUSD": "120-140",
            "CostDetailsAndOptions": "Reserved and non-reserved seating, JR Pass accepted on Hikari services",
            "AdditionalInfo": "Large luggage requires an advance seat reservation."
        },
        {
            "Country": "Thailand",
            "From": "Bangkok city center",
            "To": "Nearby districts",
            "TransportMode": "Tuk-tuk",
            "Provider": "Independent drivers",
            "Schedule": "On demand",
            "RouteInfo": "Three-wheeled taxi for short hops around the city.",
            "DurationInHours": "0.5",
            "PriceRangeInUSD": "2-6",
            "CostDetailsAndOptions": "Fares negotiated before boarding",
            "AdditionalInfo": "Agree on the price before getting in."
        }
    ],
    "scam": [
        {
            "Country": "Thailand",
            "City": "Bangkok",
            "ScamType": "Overpriced taxi",
            "Description": "Drivers refusing the meter and quoting fixed prices several times the normal fare.",
            "Location": "Near major tourist sites",
            "PreventionTips": "Insist on the meter or use a ride-hailing app."
        }
    ]
}`

var seedFileName = flag.String("src", "", "JSON dataset file of seed candidates")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// seedBatched pushes candidates through the pipeline in fixed-size
// batches so a failed embedding call loses at most one batch.
func seedBatched(ctx context.Context, pipeline *ingestion.Pipeline, records []*core.Record, batchSize int) (int, error) {
	total := 0
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		count, err := pipeline.Seed(ctx, records[start:end]...)
		total += count
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func main() {
	assistant, err := wayfind.NewAssistant("./travel_db")
	if err != nil {
		panic(err)
	}
	defer assistant.Close()

	pipeline, err := assistant.NewSeedPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	var records []*core.Record
	if seedFileName != nil && *seedFileName != "" {
		records, err = ingestion.LoadDataset(*seedFileName)
	} else {
		records, err = ingestion.ParseDataset(strings.NewReader(sampleDataset))
	}
	if err != nil {
		panic(err)
	}

	count, err := seedBatched(ctx, pipeline, records, 10)
	if err != nil {
		panic(err)
	}
	slog.Info("seeding complete", "candidates", count)
}
