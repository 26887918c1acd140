package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize          int           `env:"BUFFER_SIZE,required=true"`
	CharReplacement     string        `env:"CHARACTER_REPLACEMENT,required=true"`
	CensoredDir         string        `env:"CENSORED_DIR"`
	SinkTimeout         time.Duration `env:"SINK_TIMEOUT,required=true"`
	MetricInterval      time.Duration `env:"METRIC_INTERVAL,required=true"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,required=true"`
	AuthSecret          string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration   time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath       string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,required=true"`
	MaxBodyLength       int           `env:"MAX_BODY_LENGTH,required=true"`
	MaxPageSize         int           `env:"MAX_PAGE_SIZE,required=true"`
	SearchBatch         int           `env:"SEARCH_BATCH,required=true"`
	SearchBufferTimeout time.Duration `env:"SEARCH_BUFFER_TIMEOUT,required=true"`
	UploadMaxBytes      int64         `env:"UPLOAD_MAX_BYTES,required=true"`
	UploadTokenTTL      time.Duration `env:"UPLOAD_TOKEN_TTL,required=true"`
	PublicBaseURL       string        `env:"PUBLIC_BASE_URL,required=true"`
	Host                string        `env:"HOST,required=true"`
	Port                int           `env:"PORT,required=true"`
	HTTPPort            int           `env:"HTTP_PORT,required=true"`
	DebugPort           int           `env:"DEBUG_PORT"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
