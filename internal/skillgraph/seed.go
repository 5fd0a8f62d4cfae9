package skillgraph

// Seeded curriculum. Skills and prerequisite edges are authored here,
// not in the database; the graph is validated once at init and treated
// as read-only afterwards.

func init() {
	skills := seedSkills()
	if err := validateSkills(skills); err != nil {
		panic(err)
	}
	g = buildGraph(skills)
}

func seedSkills() []Skill {
	return []Skill{
		// Foundations
		{
			ID:          "prog-basics",
			Name:        "Programming Basics",
			Description: "Variables, control flow, functions, and reading error messages.",
			Track:       TrackFoundations,
			Level:       LevelFoundation,
			Core:        true,
		},
		{
			ID:          "version-control",
			Name:        "Version Control with Git",
			Description: "Commits, branches, merges, and collaborating through pull requests.",
			Track:       TrackFoundations,
			Level:       LevelFoundation,
			Core:        true,
		},
		{
			ID:          "cli-fundamentals",
			Name:        "Command Line Fundamentals",
			Description: "Shell navigation, pipes, environment variables, and scripting basics.",
			Track:       TrackFoundations,
			Level:       LevelFoundation,
		},
		{
			ID:            "data-structures",
			Name:          "Data Structures & Algorithms",
			Description:   "Arrays, maps, trees, and reasoning about time and space complexity.",
			Track:         TrackFoundations,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"prog-basics"},
		},

		// Backend Development
		{
			ID:            "http-fundamentals",
			Name:          "HTTP Fundamentals",
			Description:   "Requests, responses, status codes, headers, and content negotiation.",
			Track:         TrackBackend,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"prog-basics"},
		},
		{
			ID:            "rest-api-design",
			Name:          "REST API Design",
			Description:   "Resource modeling, versioning, pagination, and error contracts.",
			Track:         TrackBackend,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"http-fundamentals"},
		},
		{
			ID:            "testing-strategies",
			Name:          "Testing Strategies",
			Description:   "Unit, integration, and table-driven tests; fakes versus mocks.",
			Track:         TrackBackend,
			Level:         LevelCore,
			Prerequisites: []string{"prog-basics"},
		},
		{
			ID:            "auth-security",
			Name:          "Authentication & Security",
			Description:   "Sessions, tokens, password storage, and the OWASP basics.",
			Track:         TrackBackend,
			Level:         LevelSpecialization,
			Core:          true,
			Prerequisites: []string{"rest-api-design"},
		},
		{
			ID:            "concurrency",
			Name:          "Concurrency Patterns",
			Description:   "Races, locks, queues, and structuring concurrent work safely.",
			Track:         TrackBackend,
			Level:         LevelSpecialization,
			Prerequisites: []string{"data-structures"},
		},

		// Data & Storage
		{
			ID:            "sql-fundamentals",
			Name:          "SQL Fundamentals",
			Description:   "Selects, joins, aggregation, and transactions.",
			Track:         TrackData,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"prog-basics"},
		},
		{
			ID:            "database-design",
			Name:          "Database Design",
			Description:   "Normalization, indexing, constraints, and migration discipline.",
			Track:         TrackData,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"sql-fundamentals"},
		},
		{
			ID:            "caching",
			Name:          "Caching Strategies",
			Description:   "Cache placement, invalidation, and TTL trade-offs.",
			Track:         TrackData,
			Level:         LevelSpecialization,
			Prerequisites: []string{"database-design"},
		},
		{
			ID:            "message-queues",
			Name:          "Message Queues",
			Description:   "Asynchronous processing, delivery guarantees, and dead letters.",
			Track:         TrackData,
			Level:         LevelSpecialization,
			Prerequisites: []string{"rest-api-design"},
		},

		// Delivery & Operations
		{
			ID:            "ci-cd",
			Name:          "CI/CD Pipelines",
			Description:   "Automated builds, test gates, and deployment pipelines.",
			Track:         TrackDelivery,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"version-control", "testing-strategies"},
		},
		{
			ID:            "containers",
			Name:          "Containers",
			Description:   "Images, registries, and running services in containers.",
			Track:         TrackDelivery,
			Level:         LevelCore,
			Core:          true,
			Prerequisites: []string{"cli-fundamentals"},
		},
		{
			ID:            "observability",
			Name:          "Observability",
			Description:   "Structured logging, metrics, tracing, and actionable alerts.",
			Track:         TrackDelivery,
			Level:         LevelSpecialization,
			Prerequisites: []string{"containers", "rest-api-design"},
		},
		{
			ID:            "cloud-deployment",
			Name:          "Cloud Deployment",
			Description:   "Deploying, scaling, and operating services on a cloud platform.",
			Track:         TrackDelivery,
			Level:         LevelSpecialization,
			Core:          true,
			Prerequisites: []string{"containers", "ci-cd"},
		},
	}
}
