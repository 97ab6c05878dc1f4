// Package cli implements the interactive Arkania admin console.
//
// The console restores the previous session on start, then reads commands
// from stdin. Before login only these are available:
//
//	login, forgot-password, reset-password, help, exit
//
// Once signed in:
//
//	whoami, refresh, passwd, logout
//	users [search], find-users <term>, user <id>, user-add, user-edit <id>,
//	user-delete <id>, user-status <id> on|off
//	roles [search], find-roles <term>, role <id>, permissions, role-add,
//	role-edit <id>, role-delete <id>
//	assignments [userId], role-members <roleId>, members [search],
//	assign <userId> <role>..., unassign <assignmentId>, revoke <userId> <role>...
//	next, prev, first, last, page <n>, limit <n>
//
// Roles may be given by id or by name. Every admin command checks the
// session's permissions before calling the API; admin:access grants all of
// them. A session that ends on its own (for instance when the token is
// about to expire) is reported as "Signed out".
package cli
