package models

// All lists every model owned by the schema, in creation order.
func All() []interface{} {
	return []interface{}{
		&RoleModel{},
		&UserModel{},
		&PasswordResetTokenModel{},
		&TicketModel{},
		&CommentModel{},
	}
}

// DefaultRoles are the fixed rows of the roles lookup table.
func DefaultRoles() []RoleModel {
	return []RoleModel{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "user"},
		{ID: 3, Name: "agent"},
	}
}
