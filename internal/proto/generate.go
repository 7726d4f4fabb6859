// Package proto holds the PlantVision wire contract and the code protoc
// generates from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative plantvision.proto
