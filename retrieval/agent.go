package retrieval

import "github.com/poiesic/wayfind/core"

// Agent describes the retrieval persona registered for one intent. The
// role name keys that intent's entry in aggregated dispatch results.
type Agent struct {
	Intent    core.Intent
	Role      string
	Goal      string
	Backstory string
}

// agents is the fixed registry of retrieval agents. Scam has a stored
// collection but no agent; scam queries are answered only when another
// intent's pipeline surfaces them.
var agents = map[core.Intent]Agent{
	core.IntentAccommodation: {
		Intent:    core.IntentAccommodation,
		Role:      "Accommodation Retrieval Agent",
		Goal:      "Retrieve accommodations from the database",
		Backstory: "Find information about accommodation names, details, types, and average night prices (USD)",
	},
	core.IntentRestaurant: {
		Intent:    core.IntentRestaurant,
		Role:      "Restaurant Retrieval Agent",
		Goal:      "Retrieve restaurants from the database",
		Backstory: "Find restaurants based on query from the candidate store",
	},
	core.IntentVisa: {
		Intent:    core.IntentVisa,
		Role:      "Visa Information Retrieval Agent",
		Goal:      "Retrieve visa and travel timing information from the database",
		Backstory: "Find information about visa requirements and regulations for destinations",
	},
	core.IntentSeasonal: {
		Intent:    core.IntentSeasonal,
		Role:      "Seasonal Information Retrieval Agent",
		Goal:      "Retrieve seasonal travel information from the database",
		Backstory: "Find information about best times to visit, peak seasons, and weather patterns",
	},
	core.IntentDish: {
		Intent:    core.IntentDish,
		Role:      "Dish Retrieval Agent",
		Goal:      "Retrieve local dishes from the database",
		Backstory: "Find popular local dishes, their details, types, and pricing",
	},
	core.IntentTransport: {
		Intent:    core.IntentTransport,
		Role:      "Transportation Retrieval Agent",
		Goal:      "Retrieve transportation options from the database",
		Backstory: "Find routes, providers, schedules, and prices for transportation",
	},
	core.IntentActivity: {
		Intent:    core.IntentActivity,
		Role:      "Senior RAG Retrieval Agent",
		Goal:      "Answer questions about activities in the candidate store",
		Backstory: "Find travel activities from the candidate store",
	},
}

// LookupAgent returns the agent registered for an intent.
func LookupAgent(intent core.Intent) (Agent, bool) {
	agent, ok := agents[intent]
	return agent, ok
}

// Agents returns all registered agents in intent declaration order.
func Agents() []Agent {
	var out []Agent
	for _, intent := range core.Intents() {
		if agent, ok := agents[intent]; ok {
			out = append(out, agent)
		}
	}
	return out
}
