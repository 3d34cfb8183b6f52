package schema

// Statement is one named step of the chat schema.
type Statement struct {
	Name string
	SQL  string
}

// Statements lists the chat tables in dependency order: Users first, then
// every table whose foreign keys reference it. Each statement is idempotent
// via CREATE TABLE IF NOT EXISTS, so applying the schema twice is harmless.
var Statements = []Statement{
	{
		Name: "Users",
		SQL: `CREATE TABLE IF NOT EXISTS Users (
			user_id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_seen TIMESTAMP NULL,
			is_online BOOLEAN DEFAULT FALSE,
			INDEX idx_username (username),
			INDEX idx_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	},
	{
		Name: "DirectMessages",
		SQL: `CREATE TABLE IF NOT EXISTS DirectMessages (
			message_id INT AUTO_INCREMENT PRIMARY KEY,
			sender_id INT NOT NULL,
			receiver_id INT NOT NULL,
			message_text TEXT NOT NULL,
			sent_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			is_read BOOLEAN DEFAULT FALSE,
			FOREIGN KEY (sender_id) REFERENCES Users(user_id) ON DELETE CASCADE,
			FOREIGN KEY (receiver_id) REFERENCES Users(user_id) ON DELETE CASCADE,
			INDEX idx_sender (sender_id),
			INDEX idx_receiver (receiver_id),
			INDEX idx_conversation (sender_id, receiver_id, sent_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	},
	{
		Name: "Groups",
		SQL: "CREATE TABLE IF NOT EXISTS `Groups` (" + `
			group_id INT AUTO_INCREMENT PRIMARY KEY,
			group_name VARCHAR(100) NOT NULL,
			created_by INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			description TEXT,
			FOREIGN KEY (created_by) REFERENCES Users(user_id) ON DELETE CASCADE,
			INDEX idx_creator (created_by)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	},
	{
		Name: "GroupMembers",
		SQL: `CREATE TABLE IF NOT EXISTS GroupMembers (
			membership_id INT AUTO_INCREMENT PRIMARY KEY,
			group_id INT NOT NULL,
			user_id INT NOT NULL,
			joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			role ENUM('admin', 'member') DEFAULT 'member',
			FOREIGN KEY (group_id) REFERENCES ` + "`Groups`" + `(group_id) ON DELETE CASCADE,
			FOREIGN KEY (user_id) REFERENCES Users(user_id) ON DELETE CASCADE,
			UNIQUE KEY unique_membership (group_id, user_id),
			INDEX idx_group (group_id),
			INDEX idx_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	},
	{
		Name: "GroupMessages",
		SQL: `CREATE TABLE IF NOT EXISTS GroupMessages (
			message_id INT AUTO_INCREMENT PRIMARY KEY,
			group_id INT NOT NULL,
			sender_id INT NOT NULL,
			message_text TEXT NOT NULL,
			sent_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (group_id) REFERENCES ` + "`Groups`" + `(group_id) ON DELETE CASCADE,
			FOREIGN KEY (sender_id) REFERENCES Users(user_id) ON DELETE CASCADE,
			INDEX idx_group (group_id),
			INDEX idx_sender (sender_id),
			INDEX idx_group_time (group_id, sent_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	},
}
