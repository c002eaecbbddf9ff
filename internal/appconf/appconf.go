package appconf

// Environment describes which mode the application is running in. Test mode
// changes a handful of behaviors, most importantly forcing the database to
// live in memory.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds the application-level settings shared by every binary.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
}

// EnvFlagToEnvironment converts an environment flag value ("development",
// "test", "production") into an Environment. Unknown values map to
// Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
