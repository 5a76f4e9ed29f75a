package control

type Config struct {
	SocketPath string `json:"socket_path"`
	PIDPath    string `json:"pid_path"`
}

func DefaultConfig() Config {
	return Config{
		SocketPath: ".dirdoc/watch.sock",
		PIDPath:    ".dirdoc/watch.pid",
	}
}
