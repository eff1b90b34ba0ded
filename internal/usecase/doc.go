// Package usecase wires the factory registry, a repository, and the observer
// into the model lifecycle workflows. It is structured into small files by
// concern:
//
//   - config.go: per-workflow Config and defaults; handler subscription.
//   - ports.go: the Repository and Observer contracts the workflows consume.
//   - addmodel.go: create a model, emit its CREATE event, persist, notify.
//   - editmodel.go: patch a stored model, emit UPDATE, persist, notify.
//   - removemodel.go: emit DELETE, drop from the repository, notify.
//   - service.go: the façade the HTTP layer talks to, routing by model type.
//
// Every workflow runs its steps strictly in order and stops at the first
// failure; persistence always happens before notification and nothing is
// compensated after an error.
package usecase
