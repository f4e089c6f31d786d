// Package spclient provides the main entry point for creating
// statuspage.io API clients.
//
//	cli, err := spclient.New(&statuspage.Config{
//	  APIKey: os.Getenv("STATUSPAGE_API_KEY"),
//	  PageID: "abc123",
//	})
//
// The returned client implements statuspage.Client; see that package
// for the resource interfaces and error taxonomy.
package spclient
