package config

type (
	InternalConfig struct {
		App      App
		Upstream Upstream
		JWT      JWT
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int

		DraftSealSecret          string
		DraftTTLInHour           int
		WizardTokenExpTimeInHour int

		ResetOTPWindowInSeconds    int
		ResetOTPResendMaxPerWindow int

		NoticeDefaultDurationInMS int

		DocumentMaxUploadSizeInMB int64

		ContactQueue           string
		ContactRelayMaxRetries int
	}

	Upstream struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	JWT struct {
		Secret string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
