package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`

	DBHost string `mapstructure:"DB_HOST"`
	DBPort string `mapstructure:"DB_PORT"`
	DBUser string `mapstructure:"DB_USER"`
	DBPass string `mapstructure:"DB_PASS"`
	DBName string `mapstructure:"DB_NAME"`

	AccessTokenExpiryHour  int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	RefreshTokenExpiryHour int    `mapstructure:"REFRESH_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret      string `mapstructure:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret     string `mapstructure:"REFRESH_TOKEN_SECRET"`

	AnalyzerAPIURL string `mapstructure:"ANALYZER_API_URL"`
	AnalyzerAPIKey string `mapstructure:"ANALYZER_API_KEY"`
	AnalyzerModel  string `mapstructure:"ANALYZER_MODEL"`

	DailyAnalysisLimit int `mapstructure:"DAILY_ANALYSIS_LIMIT"`
	RecommendPageSize  int `mapstructure:"RECOMMEND_PAGE_SIZE"`
	TrendingFillerSize int `mapstructure:"TRENDING_FILLER_SIZE"`
	MovieTagTopN       int `mapstructure:"MOVIE_TAG_TOP_N"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("Can't find the file .env : ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("Environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	if env.DailyAnalysisLimit == 0 {
		env.DailyAnalysisLimit = 3
	}
	if env.RecommendPageSize == 0 {
		env.RecommendPageSize = 5
	}
	if env.TrendingFillerSize == 0 {
		env.TrendingFillerSize = 3
	}
	if env.MovieTagTopN == 0 {
		env.MovieTagTopN = 10
	}

	return &env
}
