package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           macrolib API
// @version         1.0
// @description     HTTP API for registering domain model types and driving their lifecycle (create, edit, remove) with events.
//
// @contact.name   macrolib maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
