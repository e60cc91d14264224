package main

import "public-chat-app/config"

func main() {
	config.RunServer()
}
