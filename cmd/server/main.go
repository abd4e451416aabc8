package main

import "collegeerp/internal/app/server"

func main() {
	server.Run()
}
