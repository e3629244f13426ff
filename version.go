package rivercross

// Version is the module release reported by the CLI.
const Version = "0.1.0"
