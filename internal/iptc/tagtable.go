// file: internal/iptc/tagtable.go
// version: 1.0.0
// guid: 246dc43e-da45-4dee-a23d-7faf132c7df8

package iptc

// tagTable lists the datasets defined by IIM version 4.
// Fields: record, tag, name, title, description, format, mandatory,
// repeatable, min bytes, max bytes.
var tagTable = []TagInfo{
	// Record 1: Envelope
	{RecordEnvelope, 0, "ModelVersion", "Model Version",
		"A binary number identifying the version of the Information Interchange Model, Part I, utilised by the provider.",
		FormatShort, true, false, 2, 2},
	{RecordEnvelope, 5, "Destination", "Destination",
		"Routing information for the object.",
		FormatString, false, true, 0, 1024},
	{RecordEnvelope, 20, "FileFormat", "File Format",
		"A binary number representing the file format of the object data.",
		FormatShort, true, false, 2, 2},
	{RecordEnvelope, 22, "FileFormatVersion", "File Format Version",
		"A binary number representing the version of the file format of the object data.",
		FormatShort, true, false, 2, 2},
	{RecordEnvelope, 30, "ServiceID", "Service Identifier",
		"Identifies the provider and product.",
		FormatString, true, false, 0, 10},
	{RecordEnvelope, 40, "EnvelopeNum", "Envelope Number",
		"A number unique for the date and the service identifier, allocated by the provider.",
		FormatNumericString, true, false, 8, 8},
	{RecordEnvelope, 50, "ProductID", "Product I.D.",
		"Allows a provider to identify subsets of its overall service.",
		FormatString, false, true, 0, 32},
	{RecordEnvelope, 60, "EnvelopePriority", "Envelope Priority",
		"Specifies the envelope handling priority, 1 (most urgent) to 8 (least urgent), 9 for user defined.",
		FormatNumericString, false, false, 1, 1},
	{RecordEnvelope, 70, "DateSent", "Date Sent",
		"The year, month and day (CCYYMMDD) the service sent the material.",
		FormatDate, true, false, 8, 8},
	{RecordEnvelope, 80, "TimeSent", "Time Sent",
		"The time (HHMMSS+HHMM) the service sent the material.",
		FormatTime, false, false, 11, 11},
	{RecordEnvelope, 90, "CharacterSet", "Coded Character Set",
		"Control functions used for the announcement, invocation or designation of coded character sets.",
		FormatBinary, false, false, 0, 32},
	{RecordEnvelope, 100, "UNO", "Unique Name of Object",
		"An eternal, globally unique identification for the object, independent of provider and medium.",
		FormatString, false, false, 14, 80},
	{RecordEnvelope, 120, "ARMId", "ARM Identifier",
		"Identifies the Abstract Relationship Method used.",
		FormatShort, false, false, 2, 2},
	{RecordEnvelope, 122, "ARMVersion", "ARM Version",
		"Identifies the version of the Abstract Relationship Method.",
		FormatShort, false, false, 2, 2},

	// Record 2: Application
	{RecordApplication, 0, "RecordVersion", "Record Version",
		"A binary number identifying the version of the Information Interchange Model, Part II, utilised by the provider.",
		FormatShort, true, false, 2, 2},
	{RecordApplication, 3, "ObjectType", "Object Type Reference",
		"Distinguishes between different types of objects within the IIM.",
		FormatString, false, false, 3, 67},
	{RecordApplication, 4, "ObjectAttribute", "Object Attribute Reference",
		"Defines the nature of the object independent of the subject.",
		FormatString, false, true, 4, 68},
	{RecordApplication, 5, "ObjectName", "Object Name",
		"A shorthand reference for the object, such as a title.",
		FormatString, false, false, 0, 64},
	{RecordApplication, 7, "EditStatus", "Edit Status",
		"Status of the object data, according to the practice of the provider.",
		FormatString, false, false, 0, 64},
	{RecordApplication, 8, "EditorialUpdate", "Editorial Update",
		"Indicates the type of update this object provides to a previous object.",
		FormatNumericString, false, false, 2, 2},
	{RecordApplication, 10, "Urgency", "Urgency",
		"Specifies the editorial urgency of content, 1 (most urgent) to 8 (least urgent).",
		FormatNumericString, false, false, 1, 1},
	{RecordApplication, 12, "SubjectRef", "Subject Reference",
		"A structured definition of the subject matter.",
		FormatString, false, true, 13, 236},
	{RecordApplication, 15, "Category", "Category",
		"Identifies the subject of the object data in the opinion of the provider (deprecated).",
		FormatString, false, false, 0, 3},
	{RecordApplication, 20, "SuppCategory", "Supplemental Category",
		"Further refines the subject of the object data (deprecated).",
		FormatString, false, true, 0, 32},
	{RecordApplication, 22, "FixtureID", "Fixture Identifier",
		"Identifies object data that recurs often and predictably.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 25, "Keywords", "Keywords",
		"Used to indicate specific information retrieval words.",
		FormatString, false, true, 0, 64},
	{RecordApplication, 26, "ContentLocCode", "Content Location Code",
		"Indicates the code of a country/geographical location referenced by the content of the object.",
		FormatString, false, true, 3, 3},
	{RecordApplication, 27, "ContentLocName", "Content Location Name",
		"A name of a country/geographical location referenced by the content of the object.",
		FormatString, false, true, 0, 64},
	{RecordApplication, 30, "ReleaseDate", "Release Date",
		"The earliest date (CCYYMMDD) the provider intends the object to be used.",
		FormatDate, false, false, 8, 8},
	{RecordApplication, 35, "ReleaseTime", "Release Time",
		"The earliest time (HHMMSS+HHMM) the provider intends the object to be used.",
		FormatTime, false, false, 11, 11},
	{RecordApplication, 37, "ExpirationDate", "Expiration Date",
		"The latest date (CCYYMMDD) the provider intends the object to be used.",
		FormatDate, false, false, 8, 8},
	{RecordApplication, 38, "ExpirationTime", "Expiration Time",
		"The latest time (HHMMSS+HHMM) the provider intends the object to be used.",
		FormatTime, false, false, 11, 11},
	{RecordApplication, 40, "SpecialInstructions", "Special Instructions",
		"Other editorial instructions concerning the use of the object data.",
		FormatString, false, false, 0, 256},
	{RecordApplication, 42, "ActionAdvised", "Action Advised",
		"Indicates the type of action this object provides to a previous object.",
		FormatNumericString, false, false, 2, 2},
	{RecordApplication, 45, "ReferenceService", "Reference Service",
		"Identifies the Service Identifier of a prior envelope to which the current object refers.",
		FormatString, false, true, 0, 10},
	{RecordApplication, 47, "ReferenceDate", "Reference Date",
		"Identifies the date of a prior envelope to which the current object refers.",
		FormatDate, false, true, 8, 8},
	{RecordApplication, 50, "ReferenceNumber", "Reference Number",
		"Identifies the Envelope Number of a prior envelope to which the current object refers.",
		FormatNumericString, false, true, 8, 8},
	{RecordApplication, 55, "DateCreated", "Date Created",
		"The date (CCYYMMDD) the intellectual content of the object data was created.",
		FormatDate, false, false, 8, 8},
	{RecordApplication, 60, "TimeCreated", "Time Created",
		"The time (HHMMSS+HHMM) the intellectual content of the object data was created.",
		FormatTime, false, false, 11, 11},
	{RecordApplication, 62, "DigitalCreationDate", "Digital Creation Date",
		"The date (CCYYMMDD) the digital representation of the object data was created.",
		FormatDate, false, false, 8, 8},
	{RecordApplication, 63, "DigitalCreationTime", "Digital Creation Time",
		"The time (HHMMSS+HHMM) the digital representation of the object data was created.",
		FormatTime, false, false, 11, 11},
	{RecordApplication, 65, "OriginatingProgram", "Originating Program",
		"Identifies the type of program used to originate the object data.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 70, "ProgramVersion", "Program Version",
		"Identifies the version of the program named in Originating Program.",
		FormatString, false, false, 0, 10},
	{RecordApplication, 75, "ObjectCycle", "Object Cycle",
		"Where 'a' is morning, 'p' is evening, 'b' is both.",
		FormatString, false, false, 1, 1},
	{RecordApplication, 80, "Byline", "By-line",
		"Name of the creator of the object, e.g. writer, photographer or graphic artist.",
		FormatString, false, true, 0, 32},
	{RecordApplication, 85, "BylineTitle", "By-line Title",
		"A by-line title is the title of the creator or creators of an object data.",
		FormatString, false, true, 0, 32},
	{RecordApplication, 90, "City", "City",
		"Identifies city of object data origin according to guidelines established by the provider.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 92, "Sublocation", "Sub-location",
		"Identifies the location within a city from which the object data originates.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 95, "State", "Province/State",
		"Identifies Province/State of origin according to guidelines established by the provider.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 100, "CountryCode", "Country Code",
		"Indicates the code of the country/primary location where the intellectual property of the object data was created.",
		FormatString, false, false, 3, 3},
	{RecordApplication, 101, "CountryName", "Country Name",
		"Provides full, publishable name of the country/primary location where the intellectual property of the object data was created.",
		FormatString, false, false, 0, 64},
	{RecordApplication, 103, "OrigTransRef", "Original Transmission Reference",
		"A code representing the location of original transmission.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 105, "Headline", "Headline",
		"A publishable entry providing a synopsis of the contents of the object data.",
		FormatString, false, false, 0, 256},
	{RecordApplication, 110, "Credit", "Credit",
		"Identifies the provider of the object data, not necessarily the owner/creator.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 115, "Source", "Source",
		"The name of a person or party who has a role in the content supply chain.",
		FormatString, false, false, 0, 32},
	{RecordApplication, 116, "CopyrightNotice", "Copyright Notice",
		"Contains any necessary copyright notice.",
		FormatString, false, false, 0, 128},
	{RecordApplication, 118, "Contact", "Contact",
		"Identifies the person or organisation which can provide further background information on the object data.",
		FormatString, false, true, 0, 128},
	{RecordApplication, 120, "Caption", "Caption/Abstract",
		"A textual description of the object data.",
		FormatString, false, false, 0, 2000},
	{RecordApplication, 122, "WriterEditor", "Writer/Editor",
		"Identification of the name of the person involved in the writing, editing or correcting the object data or caption/abstract.",
		FormatString, false, true, 0, 32},
	{RecordApplication, 125, "RasterizedCaption", "Rasterized Caption",
		"Contains the rasterized object data description; a 460 by 128 pixel, 1 bit per pixel image.",
		FormatBinary, false, false, 7360, 7360},
	{RecordApplication, 130, "ImageType", "Image Type",
		"Indicates the color components of an image.",
		FormatString, false, false, 2, 2},
	{RecordApplication, 131, "ImageOrientation", "Image Orientation",
		"Indicates the layout of an image: P for portrait, L for landscape, S for square.",
		FormatString, false, false, 1, 1},
	{RecordApplication, 135, "LanguageID", "Language Identifier",
		"Describes the major national language of the object, according to the 2-letter codes of ISO 639:1988.",
		FormatString, false, false, 2, 3},
	{RecordApplication, 150, "AudioType", "Audio Type",
		"Indicates the number of channels and the type of audio content.",
		FormatString, false, false, 2, 2},
	{RecordApplication, 151, "AudioSamplingRate", "Audio Sampling Rate",
		"Indicates the sampling rate in Hertz of the audio content.",
		FormatNumericString, false, false, 6, 6},
	{RecordApplication, 152, "AudioSamplingRes", "Audio Sampling Resolution",
		"Indicates the sampling resolution in bits of each sample of the audio content.",
		FormatNumericString, false, false, 2, 2},
	{RecordApplication, 153, "AudioDuration", "Audio Duration",
		"Indicates the duration (HHMMSS) of the audio content.",
		FormatNumericString, false, false, 6, 6},
	{RecordApplication, 154, "AudioOutcue", "Audio Outcue",
		"Identifies the content of the end of an audio object data.",
		FormatString, false, false, 0, 64},
	{RecordApplication, 200, "PreviewFileFormat", "Preview File Format",
		"A binary number representing the file format of the object data preview.",
		FormatShort, false, false, 2, 2},
	{RecordApplication, 201, "PreviewFileFormatVer", "Preview File Format Version",
		"A binary number representing the particular version of the object data preview file format.",
		FormatShort, false, false, 2, 2},
	{RecordApplication, 202, "PreviewData", "Preview Data",
		"The object data preview.",
		FormatBinary, false, false, 0, 256000},

	// Record 3: Digital Newsphoto Parameter
	{RecordNewsPhoto, 0, "NewsPhotoVersion", "Record Version",
		"A binary number identifying the version of the Digital Newsphoto Parameter Record.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 10, "PictureNumber", "Picture Number",
		"A number that uniquely identifies a picture.",
		FormatString, false, false, 16, 16},
	{RecordNewsPhoto, 20, "PixelsPerLine", "Pixels Per Line",
		"The number of pixels in a scan line.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 30, "NumberOfLines", "Number of Lines",
		"The number of scan lines comprising the image.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 40, "PixelSizeInScanningDirection", "Pixel Size in Scanning Direction",
		"Pixel size, in microns, in the scanning direction.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 50, "PixelSizePerpendicularToScanningDirection", "Pixel Size Perpendicular to Scanning Direction",
		"Pixel size, in microns, perpendicular to the scanning direction.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 55, "SupplementType", "Supplement Type",
		"Indicates the image that follows is a reduced-resolution or logo version.",
		FormatByte, false, false, 1, 1},
	{RecordNewsPhoto, 60, "ColourRepresentation", "Colour Representation",
		"Number of colour components and the composition of the image data.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 64, "InterchangeColourSpace", "Interchange Colour Space",
		"Indicates the colour space in which the pixel values are expressed.",
		FormatByte, false, false, 1, 1},
	{RecordNewsPhoto, 65, "ColourSequence", "Colour Sequence",
		"Each colour component in the image data is identified in transmission order.",
		FormatByte, false, false, 1, 4},
	{RecordNewsPhoto, 66, "ICC_Profile", "ICC Input Colour Profile",
		"The ICC input profile of the image data.",
		FormatBinary, false, false, 0, 524288},
	{RecordNewsPhoto, 70, "ColourCalibrationMatrix", "Colour Calibration Matrix Table",
		"The colour calibration matrix table.",
		FormatBinary, false, false, 0, 524288},
	{RecordNewsPhoto, 80, "LookupTable", "Lookup Table",
		"A lookup table (LUT) for each colour component.",
		FormatBinary, false, false, 0, 131072},
	{RecordNewsPhoto, 84, "NumIndexEntries", "Number of Index Entries",
		"The number of index entries in the colour palette.",
		FormatShort, true, false, 2, 2},
	{RecordNewsPhoto, 85, "ColourPalette", "Colour Palette",
		"The colour palette of an indexed image.",
		FormatBinary, false, false, 0, 524288},
	{RecordNewsPhoto, 86, "NumberOfBitsPerSample", "Number of Bits per Sample",
		"The number of bits per pixel value used as an index into the colour palette.",
		FormatByte, false, false, 1, 1},
	{RecordNewsPhoto, 90, "SamplingStructure", "Sampling Structure",
		"Defines the relationship of the sampling of the colour components.",
		FormatByte, true, false, 1, 1},
	{RecordNewsPhoto, 100, "ScanningDirection", "Scanning Direction",
		"Indicates the correct relative order of pixels and lines.",
		FormatByte, true, false, 1, 1},
	{RecordNewsPhoto, 102, "ImageRotation", "Image Rotation",
		"Indicates the clockwise rotation applied to the image for presentation.",
		FormatByte, true, false, 1, 1},
	{RecordNewsPhoto, 110, "DataCompressionMethod", "Data Compression Method",
		"Specifies the service and version of the compression method.",
		FormatLong, true, false, 4, 4},
	{RecordNewsPhoto, 120, "QuantisationMethod", "Quantisation Method",
		"Indicates the quantisation law used for the image data.",
		FormatByte, true, false, 1, 1},
	{RecordNewsPhoto, 125, "EndPoints", "End Points",
		"The end points for each colour component in the image data.",
		FormatBinary, false, false, 0, 524288},
	{RecordNewsPhoto, 130, "ExcursionTolerance", "Excursion Tolerance",
		"Indicates whether pixel values may exceed the end points.",
		FormatByte, false, false, 1, 1},
	{RecordNewsPhoto, 135, "BitsPerComponent", "Bits Per Component",
		"The number of bits used to represent each colour component.",
		FormatByte, false, false, 1, 4},
	{RecordNewsPhoto, 140, "MaximumDensityRange", "Maximum Density Range",
		"The maximum density range multiplied by 100.",
		FormatShort, false, false, 2, 2},
	{RecordNewsPhoto, 145, "GammaCompensatedValue", "Gamma Compensated Value",
		"The gamma value of the image multiplied by 100.",
		FormatShort, false, false, 2, 2},

	// Record 7: Pre-ObjectData Descriptor
	{RecordPreObject, 10, "SizeMode", "Size Mode",
		"0 if the size of the object data is not known, 1 if it is known in advance.",
		FormatByte, true, false, 1, 1},
	{RecordPreObject, 20, "MaxSubfileSize", "Max Subfile Size",
		"The maximum size of a subfile dataset containing a portion of the object data.",
		FormatLong, true, false, 4, 4},
	{RecordPreObject, 90, "ObjectSizeAnnounced", "ObjectData Size Announced",
		"The total size of the object data, if known.",
		FormatLong, false, false, 4, 4},
	{RecordPreObject, 95, "MaximumObjectSize", "Maximum ObjectData Size",
		"The largest possible size of the object data when its size is not known.",
		FormatLong, false, false, 4, 4},

	// Record 8: ObjectData
	{RecordObject, 10, "Subfile", "Subfile",
		"A portion of the object data.",
		FormatBinary, true, true, 0, 0x7fffffff},

	// Record 9: Post-ObjectData Descriptor
	{RecordPostObject, 10, "ConfirmedObjectSize", "Confirmed ObjectData Size",
		"The total size of the object data.",
		FormatLong, false, false, 4, 4},
}
