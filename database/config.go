package database

import "os"

// Config is everything the server reads from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	InstanceSecret string
	GraphBaseURL   string
	FBAppID        string
	FBAppSecret    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func LoadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       os.Getenv("MONGO_URI"),
		DBName:         getEnv("DB_NAME", "fbcal_workspace"),
		InstanceSecret: os.Getenv("INSTANCE_SECRET"),
		GraphBaseURL:   getEnv("GRAPH_BASE_URL", "https://graph.facebook.com/v2.0"),
		FBAppID:        os.Getenv("FB_APP_ID"),
		FBAppSecret:    os.Getenv("FB_APP_SECRET"),
	}
}
