package queue

// Topic naming: cn.<domain>.<action>. Topics stay stable once published;
// consumers should ignore unknown payload fields.
const (
	// Node lifecycle.
	TopicNodeUploaded  = "cn.node.uploaded" // file stored in the blob store and its row committed
	TopicNodeTrashed   = "cn.node.trashed"  // node flagged as trash
	TopicNodeRestored  = "cn.node.restored" // trash flag cleared
	TopicNodeDeleted   = "cn.node.deleted"  // node permanently removed (row and blob)
	TopicFolderCreated = "cn.folder.created"

	// Trash maintenance.
	TopicTrashEmptied = "cn.trash.emptied" // recycle bin sweep finished
)

// NodeTopics groups every node lifecycle topic for bulk subscription.
var NodeTopics = []string{
	TopicNodeUploaded, TopicNodeTrashed, TopicNodeRestored,
	TopicNodeDeleted, TopicFolderCreated, TopicTrashEmptied,
}
