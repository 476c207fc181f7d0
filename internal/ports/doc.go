// Package ports holds the interfaces the watch store's layers meet at.
// Handlers depend on the service ports (UserService, AuthService,
// AddressService, WatchService); services depend on the repository, password,
// token and blocklist ports implemented under internal/adapters and
// internal/platform.
package ports
